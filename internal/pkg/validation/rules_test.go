package validation

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidPassword(t *testing.T) {
	assert.True(t, ValidPassword("abcdefg1"))
	assert.True(t, ValidPassword("Sécurité9"))
	assert.False(t, ValidPassword("short1"))
	assert.False(t, ValidPassword("allletters"))
	assert.False(t, ValidPassword("12345678"))
}

func TestParseYearMonth(t *testing.T) {
	start, end, err := ParseYearMonth("2026-12")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 12, 1, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC), end)

	for _, bad := range []string{"2026-13", "2026-1", "26-01", "2026/01", ""} {
		_, _, err := ParseYearMonth(bad)
		assert.Error(t, err, bad)
	}
}

func TestRegisterTags(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type form struct {
		Password string `validate:"password"`
		Month    string `validate:"omitempty,yearmonth"`
	}

	assert.NoError(t, v.Struct(form{Password: "abcdefg1", Month: "2026-05"}))
	assert.NoError(t, v.Struct(form{Password: "abcdefg1"}))
	assert.Error(t, v.Struct(form{Password: "abc"}))
	assert.Error(t, v.Struct(form{Password: "abcdefg1", Month: "May"}))
}

func TestRegisterWithGin(t *testing.T) {
	assert.NoError(t, RegisterWithGin())
}
