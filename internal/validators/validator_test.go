package validators

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/studytrack/models"
)

func TestValidate_Countdown(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	ok := models.Countdown{Title: "Finals", Type: models.CountdownExam, Date: time.Now().Add(time.Hour)}
	require.NoError(t, v.Validate(ctx, ok))
	require.NoError(t, v.Validate(ctx, &ok))

	bad := models.Countdown{Type: "party"}
	err := v.Validate(ctx, bad)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidData))

	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	fields := make([]string, 0, len(ve.Fields))
	for _, f := range ve.Fields {
		fields = append(fields, f.Field)
		assert.NotEmpty(t, f.Message)
	}
	assert.ElementsMatch(t, []string{"title", "type", "date"}, fields)
}

func TestValidate_Partial(t *testing.T) {
	v := NewValidator()
	err := v.Validate(context.Background(), models.Countdown{Title: "Finals"}, "Title")
	assert.NoError(t, err)
}

func TestValidate_NotBlank(t *testing.T) {
	v := NewValidator()
	ctx := context.Background()

	require.NoError(t, v.Validate(ctx, models.Subject{Name: "Math"}))

	err := v.Validate(ctx, models.Subject{Name: "   "})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "name cannot be blank")
}

func TestValidate_Nested(t *testing.T) {
	v := NewValidator()
	deck := models.Deck{Title: "Bio", Cards: []models.Card{{Front: "q"}}}
	err := v.Validate(context.Background(), deck)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidData)
}

func TestValidate_Nil(t *testing.T) {
	v := NewValidator()
	var c *models.Countdown
	assert.ErrorIs(t, v.Validate(context.Background(), nil), ErrNilValue)
	assert.ErrorIs(t, v.Validate(context.Background(), c), ErrNilValue)
	assert.ErrorIs(t, v.Validate(context.Background(), 42), ErrUnknownField)
}
