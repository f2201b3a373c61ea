package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/farellandr/eventcatalog/internal/apperror"
)

const (
	categoryID    = "0b6c7a36-6f3e-4d55-9d1b-51f7f9d4a1c2"
	subcategoryID = "5f0f4a1e-2b9c-4b7e-8f7a-1d2c3b4a5e6f"
)

func strPtr(s string) *string { return &s }

func fieldsOf(t *testing.T, err error) []string {
	t.Helper()
	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Equal(t, apperror.KindValidation, appErr.Kind)

	names := make([]string, 0, len(appErr.Fields))
	for _, f := range appErr.Fields {
		names = append(names, f.Field)
	}
	return names
}

func validEventInput() EventInput {
	return EventInput{
		Name:          "Jazz Night",
		Date:          float64(1732000000000),
		Venue:         "Blue Room",
		ImageURL:      strPtr("https://cdn.example.com/jazz.png"),
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
		ContactPhone:  strPtr("+62811223344"),
		ContactEmail:  strPtr("hello@example.com"),
	}
}

// ============================================
// Category / Subcategory
// ============================================

func TestCategoryInput_Normalize(t *testing.T) {
	got, err := CategoryInput{Name: "  Music "}.Normalize()

	require.NoError(t, err)
	assert.Equal(t, "Music", got.Name)
}

func TestCategoryInput_Normalize_RejectsBlankName(t *testing.T) {
	_, err := CategoryInput{Name: "   "}.Normalize()

	assert.Equal(t, []string{"name"}, fieldsOf(t, err))
}

func TestSubcategoryInput_Normalize(t *testing.T) {
	got, err := SubcategoryInput{Name: "Jazz", CategoryID: "0B6C7A36-6F3E-4D55-9D1B-51F7F9D4A1C2"}.Normalize()

	require.NoError(t, err)
	assert.Equal(t, "Jazz", got.Name)
	assert.Equal(t, categoryID, got.CategoryID.String())
}

func TestSubcategoryInput_Normalize_ReportsEveryField(t *testing.T) {
	_, err := SubcategoryInput{Name: "", CategoryID: "not-a-uuid"}.Normalize()

	assert.Equal(t, []string{"name", "categoryId"}, fieldsOf(t, err))
}

// ============================================
// Event
// ============================================

func TestEventInput_Normalize_Valid(t *testing.T) {
	got, err := validEventInput().Normalize()

	require.NoError(t, err)
	assert.Equal(t, "Jazz Night", got.Name)
	assert.Equal(t, time.UnixMilli(1732000000000).UTC(), got.Date)
	assert.Equal(t, categoryID, got.CategoryID.String())
	assert.Equal(t, subcategoryID, got.SubcategoryID.String())
	require.NotNil(t, got.ContactEmail)
	assert.Equal(t, "hello@example.com", *got.ContactEmail)
}

func TestEventInput_Normalize_OptionalFieldsMayBeAbsent(t *testing.T) {
	in := validEventInput()
	in.ImageURL = nil
	in.ContactPhone = strPtr("")
	in.ContactEmail = nil

	got, err := in.Normalize()

	require.NoError(t, err)
	assert.Nil(t, got.ImageURL)
	assert.Nil(t, got.ContactPhone)
	assert.Nil(t, got.ContactEmail)
}

func TestEventInput_Normalize_ReportsEveryField(t *testing.T) {
	in := EventInput{
		Name:          "",
		Date:          "someday",
		Venue:         "",
		ImageURL:      strPtr("not a url"),
		CategoryID:    "nope",
		SubcategoryID: "",
		ContactPhone:  strPtr("123"),
		ContactEmail:  strPtr("not-an-email"),
	}

	_, err := in.Normalize()

	assert.Equal(t, []string{
		"name", "date", "venue", "imageUrl", "categoryId", "subcategoryId", "contactPhone", "contactEmail",
	}, fieldsOf(t, err))
}

func TestEventInput_Normalize_FieldMessages(t *testing.T) {
	in := validEventInput()
	in.ContactPhone = strPtr("1234567")

	_, err := in.Normalize()

	var appErr *apperror.Error
	require.ErrorAs(t, err, &appErr)
	require.Len(t, appErr.Fields, 1)
	assert.Equal(t, "contactPhone", appErr.Fields[0].Field)
	assert.Contains(t, appErr.Fields[0].Message, "contactPhone")
	assert.Contains(t, appErr.Fields[0].Message, "8")
}

func TestEventInput_Normalize_MissingDate(t *testing.T) {
	in := validEventInput()
	in.Date = nil

	_, err := in.Normalize()

	assert.Equal(t, []string{"date"}, fieldsOf(t, err))
}

// ============================================
// Dates
// ============================================

func TestParseEventDate(t *testing.T) {
	tests := []struct {
		name  string
		input any
		want  time.Time
	}{
		{"epoch millis", float64(1732000000000), time.Date(2024, 11, 19, 7, 6, 40, 0, time.UTC)},
		{"epoch millis int64", int64(1732000000000), time.Date(2024, 11, 19, 7, 6, 40, 0, time.UTC)},
		{"calendar date", "2024-12-01", time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)},
		{"rfc3339", "2024-12-01T18:30:00+07:00", time.Date(2024, 12, 1, 11, 30, 0, 0, time.UTC)},
		{"date and clock", "2024-12-01 18:30:00", time.Date(2024, 12, 1, 18, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
		})
	}
}

func TestParseEventDate_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input any
	}{
		{"negative", float64(-1)},
		{"zero", float64(0)},
		{"fraction", 1732000000000.5},
		{"too large", 9e15},
		{"garbage", "someday"},
		{"clock only", "18:30"},
		{"bad month", "2024-13-01"},
		{"bool", true},
		{"nil", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEventDate(tt.input)
			assert.Error(t, err)
		})
	}
}

// ============================================
// Identifiers
// ============================================

func TestParseID(t *testing.T) {
	id, err := ParseID("id", categoryID)

	require.NoError(t, err)
	assert.Equal(t, categoryID, id.String())
}

func TestParseID_Malformed(t *testing.T) {
	for _, raw := range []string{"not-a-uuid", "", "1234"} {
		_, err := ParseID("id", raw)
		assert.ErrorIs(t, err, apperror.ErrValidation, raw)
	}
}

func TestCheck_NonStructInputHidesValidatorText(t *testing.T) {
	err := check(42)

	assert.Equal(t, []string{"body"}, fieldsOf(t, err))
	assert.NotContains(t, err.Error(), "validator")
}
