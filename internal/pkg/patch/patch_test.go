//go:build unit

package patch_test

import (
	"testing"

	"locadora-api/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestSetIfPresent(t *testing.T) {
	name := "Maria"
	attrs := map[string]any{}

	patch.SetIfPresent(attrs, "nome", &name)
	patch.SetIfPresent[string](attrs, "email", nil)

	assert.Equal(t, map[string]any{"nome": "Maria"}, attrs)
}
