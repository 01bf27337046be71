package util

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProtocol_Format(t *testing.T) {
	now := time.Date(2025, 8, 20, 14, 30, 52, 0, time.UTC)

	protocol := GenerateProtocol(now)

	assert.Len(t, protocol, 16)
	assert.Regexp(t, regexp.MustCompile(`^20250820143052\d{2}$`), protocol)
}

func TestGenerateProtocol_FreshPerCall(t *testing.T) {
	now := time.Now()

	// Same instant, so only the random suffix may differ.
	first := GenerateProtocol(now)
	second := GenerateProtocol(now)

	assert.Equal(t, first[:14], second[:14])
	assert.Regexp(t, `^\d{16}$`, first)
	assert.Regexp(t, `^\d{16}$`, second)
}
