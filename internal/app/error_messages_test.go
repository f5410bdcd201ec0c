package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBackendMessage(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{CodeEmailInUse, MsgUsernameTaken},
		{CodeWrongPassword, MsgInvalidCredentials},
		{CodeUserNotFound, MsgInvalidCredentials},
		{CodeInternal, MsgInternalServerError},
		{"", MsgUnknownBackendError},
		{"made-up", MsgUnknownBackendError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, BackendMessage(tt.code))
		})
	}
}

func TestBackendMessage_EveryCodeMapped(t *testing.T) {
	for code := range backendMessages {
		assert.NotEqual(t, MsgUnknownBackendError, BackendMessage(code), code)
	}
}
