package service

import (
	"errors"
	"fmt"
	"testing"

	"github.com/MKhiriev/studytrack/internal/app"
	"github.com/MKhiriev/studytrack/internal/validators"
	"github.com/stretchr/testify/assert"
)

func TestMessageFor(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "duplicate username", err: ErrDuplicateUsername, want: app.MsgUsernameTaken},
		{name: "wrapped sentinel", err: fmt.Errorf("login: %w", ErrInvalidCredentials), want: app.MsgInvalidCredentials},
		{name: "remote failure", err: remoteFailure("study group not found"), want: "study group not found"},
		{
			name: "validation error",
			err: fmt.Errorf("%w: %w", ErrInvalidData, &validators.ValidationError{
				Fields: []validators.FieldError{{Field: "title", Message: "title is a required field"}},
			}),
			want: "title is a required field",
		},
		{name: "unknown", err: errors.New("disk on fire"), want: app.MsgInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MessageFor(tt.err))
		})
	}
}
