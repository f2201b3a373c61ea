package mocks

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/farellandr/eventcatalog/internal/models"
	"github.com/farellandr/eventcatalog/internal/store"
)

// MemoryStore is an in-memory implementation of store.Store for testing.
// Foreign keys behave like the postgres schema: deleting a referenced row
// fails with store.ErrForeignKey and nothing cascades.
type MemoryStore struct {
	mu sync.RWMutex

	categories    []models.Category
	subcategories []models.Subcategory
	events        []models.Event
	clock         time.Time

	// Err, when set, is returned by every call.
	Err error
	// CreateErr, when set, is returned by the create calls only.
	CreateErr error

	TransactionCalls int
}

// NewMemoryStore creates a new MemoryStore
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		clock: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

var _ store.Store = (*MemoryStore)(nil)

// tick hands out strictly increasing creation times.
func (m *MemoryStore) tick() time.Time {
	m.clock = m.clock.Add(time.Second)
	return m.clock
}

func (m *MemoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	m.mu.Lock()
	m.TransactionCalls++
	m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	return fn(ctx)
}

func (m *MemoryStore) Ping(ctx context.Context) error {
	return m.Err
}

// ============================================
// Categories
// ============================================

func (m *MemoryStore) CreateCategory(ctx context.Context, category *models.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}

	for _, c := range m.categories {
		if strings.EqualFold(c.Name, category.Name) {
			return store.ErrDuplicate
		}
	}
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	category.CreatedAt = m.tick()
	category.UpdatedAt = category.CreatedAt
	m.categories = append(m.categories, *category)
	return nil
}

func (m *MemoryStore) FindCategoryByID(ctx context.Context, id uuid.UUID) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, c := range m.categories {
		if c.ID == id {
			c := c
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) FindCategoryByName(ctx context.Context, name string) (*models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, c := range m.categories {
		if strings.EqualFold(c.Name, name) {
			c := c
			return &c, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) ListCategories(ctx context.Context) ([]models.Category, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	return append([]models.Category(nil), m.categories...), nil
}

func (m *MemoryStore) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for i, c := range m.categories {
		if c.ID == id {
			if m.categoryReferencedLocked(id) {
				return fmt.Errorf("%w: category %s", store.ErrForeignKey, id)
			}
			m.categories = append(m.categories[:i], m.categories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ============================================
// Subcategories
// ============================================

func (m *MemoryStore) CreateSubcategory(ctx context.Context, subcategory *models.Subcategory) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}

	for _, s := range m.subcategories {
		if s.CategoryID == subcategory.CategoryID && strings.EqualFold(s.Name, subcategory.Name) {
			return store.ErrDuplicate
		}
	}
	if subcategory.ID == uuid.Nil {
		subcategory.ID = uuid.New()
	}
	subcategory.CreatedAt = m.tick()
	subcategory.UpdatedAt = subcategory.CreatedAt
	stored := *subcategory
	stored.Category = nil
	m.subcategories = append(m.subcategories, stored)
	return nil
}

func (m *MemoryStore) FindSubcategoryByID(ctx context.Context, id uuid.UUID) (*models.Subcategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, s := range m.subcategories {
		if s.ID == id {
			s := s
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) FindSubcategoryByName(ctx context.Context, categoryID uuid.UUID, name string) (*models.Subcategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, s := range m.subcategories {
		if s.CategoryID == categoryID && strings.EqualFold(s.Name, name) {
			s := s
			return &s, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) ListSubcategories(ctx context.Context, query store.SubcategoryQuery) ([]models.Subcategory, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]models.Subcategory, 0, len(m.subcategories))
	for _, s := range m.subcategories {
		if query.CategoryID != nil && s.CategoryID != *query.CategoryID {
			continue
		}
		if query.WithCategory {
			s.Category = m.categoryLocked(s.CategoryID)
		}
		result = append(result, s)
	}
	return result, nil
}

func (m *MemoryStore) DeleteSubcategory(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for i, s := range m.subcategories {
		if s.ID == id {
			if m.subcategoryReferencedLocked(id) {
				return fmt.Errorf("%w: subcategory %s", store.ErrForeignKey, id)
			}
			m.subcategories = append(m.subcategories[:i], m.subcategories[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ============================================
// Events
// ============================================

func (m *MemoryStore) CreateEvent(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}
	if m.CreateErr != nil {
		return m.CreateErr
	}

	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	event.CreatedAt = m.tick()
	event.UpdatedAt = event.CreatedAt
	stored := *event
	stored.Category, stored.Subcategory = nil, nil
	m.events = append(m.events, stored)
	return nil
}

func (m *MemoryStore) FindEventByID(ctx context.Context, id uuid.UUID, withRelations bool) (*models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	for _, e := range m.events {
		if e.ID == id {
			if withRelations {
				m.attachLocked(&e)
			}
			return &e, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *MemoryStore) ListEvents(ctx context.Context, query store.EventQuery) ([]models.Event, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.Err != nil {
		return nil, m.Err
	}

	result := make([]models.Event, 0, len(m.events))
	for _, e := range m.events {
		if query.CategoryID != nil && e.CategoryID != *query.CategoryID {
			continue
		}
		if query.SubcategoryID != nil && e.SubcategoryID != *query.SubcategoryID {
			continue
		}
		if query.WithRelations {
			m.attachLocked(&e)
		}
		result = append(result, e)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MemoryStore) UpdateEvent(ctx context.Context, event *models.Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for i, e := range m.events {
		if e.ID == event.ID {
			if m.categoryLocked(event.CategoryID) == nil || m.subcategoryLocked(event.SubcategoryID) == nil {
				return fmt.Errorf("%w: event %s", store.ErrForeignKey, event.ID)
			}
			updated := *event
			updated.Category, updated.Subcategory = nil, nil
			updated.CreatedAt = e.CreatedAt
			updated.UpdatedAt = m.tick()
			m.events[i] = updated
			return nil
		}
	}
	return store.ErrNotFound
}

func (m *MemoryStore) DeleteEvent(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Err != nil {
		return m.Err
	}

	for i, e := range m.events {
		if e.ID == id {
			m.events = append(m.events[:i], m.events[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

// ============================================
// Helpers
// ============================================

// EventCount returns the number of stored events.
func (m *MemoryStore) EventCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.events)
}

// SubcategoryCount returns the number of stored subcategories.
func (m *MemoryStore) SubcategoryCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.subcategories)
}

func (m *MemoryStore) categoryReferencedLocked(id uuid.UUID) bool {
	for _, s := range m.subcategories {
		if s.CategoryID == id {
			return true
		}
	}
	for _, e := range m.events {
		if e.CategoryID == id {
			return true
		}
	}
	return false
}

func (m *MemoryStore) subcategoryReferencedLocked(id uuid.UUID) bool {
	for _, e := range m.events {
		if e.SubcategoryID == id {
			return true
		}
	}
	return false
}

func (m *MemoryStore) categoryLocked(id uuid.UUID) *models.Category {
	for _, c := range m.categories {
		if c.ID == id {
			c := c
			return &c
		}
	}
	return nil
}

func (m *MemoryStore) subcategoryLocked(id uuid.UUID) *models.Subcategory {
	for _, s := range m.subcategories {
		if s.ID == id {
			s := s
			return &s
		}
	}
	return nil
}

func (m *MemoryStore) attachLocked(e *models.Event) {
	e.Category = m.categoryLocked(e.CategoryID)
	e.Subcategory = m.subcategoryLocked(e.SubcategoryID)
}
