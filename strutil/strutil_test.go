package strutil

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFmt(t *testing.T) {
	assert.Equal(t, "a=1&b=two", Fmt("%s=%d&%s=%s", "a", 1, "b", "two"))
}

func TestAtos(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"nil", nil, ""},
		{"string", "abc", "abc"},
		{"bytes", []byte("xyz"), "xyz"},
		{"int", 42, "42"},
		{"float no exponent", 1234567.5, "1234567.5"},
		{"bool", true, "true"},
		{"stringer", time.Duration(90e9), "1m30s"},
		{"error", errors.New("boom"), "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Atos(tt.in))
		})
	}
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("  \t"))
	assert.False(t, IsEmpty("x"))
	assert.True(t, IsNotEmpty(" x "))
}
