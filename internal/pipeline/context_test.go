package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_ErrorAccumulation(t *testing.T) {
	ctx := &Context{}

	assert.False(t, ctx.HasErrors())
	assert.Empty(t, ctx.Errors())

	ctx.Error("placeholder is missing")
	ctx.Errorf("manifest %s has no version field", "package.json")

	assert.True(t, ctx.HasErrors())
	assert.Equal(t, []string{
		"placeholder is missing",
		"manifest package.json has no version field",
	}, ctx.Errors(), "problems keep their reporting order")
}
