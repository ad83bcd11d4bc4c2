package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Ada@Example.com", "ada@example.com"},
		{"  ada@example.com  ", "ada@example.com"},
		{"ADA@EXAMPLE.COM", "ada@example.com"},
		{"ada@example.com", "ada@example.com"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, NormalizeEmail(tt.in))
	}
}
