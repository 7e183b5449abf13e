package gateway

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrefixForDistinctAndNonEmpty(t *testing.T) {
	sj := PrefixFor(BackendScramJet)
	uv := PrefixFor(BackendUltraviolet)

	assert.NotEmpty(t, sj)
	assert.NotEmpty(t, uv)
	assert.NotEqual(t, sj, uv, "backend prefixes must not overlap")
}

func TestBackendOther(t *testing.T) {
	assert.Equal(t, BackendUltraviolet, BackendScramJet.Other())
	assert.Equal(t, BackendScramJet, BackendUltraviolet.Other())
}

func TestParseBackend(t *testing.T) {
	b, err := ParseBackend("scramjet")
	assert.NoError(t, err)
	assert.Equal(t, BackendScramJet, b)

	b, err = ParseBackend("ultraviolet")
	assert.NoError(t, err)
	assert.Equal(t, BackendUltraviolet, b)

	b, err = ParseBackend("uv")
	assert.NoError(t, err)
	assert.Equal(t, BackendUltraviolet, b)

	_, err = ParseBackend("squid")
	assert.Error(t, err)
}
