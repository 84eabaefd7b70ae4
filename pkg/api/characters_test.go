package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCharacterPath(t *testing.T) {
	assert.Equal(t, "/characters/abc-123", CharacterPath("abc-123"))
	assert.Equal(t, "/characters/a%2Fb", CharacterPath("a/b"))
	assert.Equal(t, "/characters/mr%20game%20&%20watch", CharacterPath("mr game & watch"))
}
