package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeName(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{ExitSuccess, "Success"},
		{ExitGeneralError, "General Error"},
		{ExitValidationError, "Validation Error"},
		{ExitNotFound, "Not Found"},
		{ExitSourceError, "Source Unreadable"},
		{99, "Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCodeName(tt.code))
		})
	}
}
