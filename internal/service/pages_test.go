package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPages(t *testing.T) {
	t.Parallel()

	registry := newPages()

	page := registry.get(1)
	page.Notify("hello")

	assert.Same(t, page, registry.get(1))
	assert.NotSame(t, page, registry.get(2))
	assert.Len(t, registry.items, 2)

	registry.forget(1)
	registry.forget(3)

	assert.Len(t, registry.items, 1)
	assert.Empty(t, registry.get(1).Notifications())
}
