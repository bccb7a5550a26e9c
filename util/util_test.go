package util

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewUniqueID(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		id := NewUniqueID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		parts := strings.SplitN(id, "-", 2)
		assert.Len(t, parts, 2)
		assert.NotEmpty(t, parts[0])
		assert.Len(t, parts[1], 13)
	}
}
