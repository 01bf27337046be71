package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "adds country code", input: "11999998888", expected: "+5511999998888"},
		{name: "already prefixed is not doubled", input: "5511999998888", expected: "+5511999998888"},
		{name: "strips formatting", input: "(11) 99999-8888", expected: "+5511999998888"},
		{name: "keeps plus prefix input", input: "+5511999998888", expected: "+5511999998888"},
		{name: "caps at thirteen digits", input: "551199999888899", expected: "+5511999998888"},
		{name: "empty input", input: "", expected: "+55"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizePhone(tt.input))
		})
	}
}

func TestIsValidPhone(t *testing.T) {
	assert.True(t, IsValidPhone("+5511999998888"))
	assert.True(t, IsValidPhone("5511999998888"))
	assert.False(t, IsValidPhone("+551199999888"))
	assert.False(t, IsValidPhone("+55"))
}
