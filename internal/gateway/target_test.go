package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTargetEncodesURLAsSingleSegment(t *testing.T) {
	assert.Equal(t, "/scramjet/https%3A%2F%2Fexample.com",
		Target(BackendScramJet, "https://example.com"))
	assert.Equal(t, "/uv/https%3A%2F%2Fexample.com",
		Target(BackendUltraviolet, "https://example.com"))
}

func TestTargetEscapesPathSeparators(t *testing.T) {
	target := Target(BackendScramJet, "https://example.com/a/b?q=1")
	assert.Equal(t, "/scramjet/https%3A%2F%2Fexample.com%2Fa%2Fb%3Fq%3D1", target)
}

func TestTargetEncodesSpaces(t *testing.T) {
	target := Target(BackendScramJet, "https://example.com/a b")
	assert.Equal(t, "/scramjet/https%3A%2F%2Fexample.com%2Fa%20b", target)
}

func TestAbsolute(t *testing.T) {
	assert.Equal(t, "http://localhost:8080/uv/x", Absolute("http://localhost:8080", "/uv/x"))
	assert.Equal(t, "http://localhost:8080/uv/x", Absolute("http://localhost:8080/", "/uv/x"))
}
