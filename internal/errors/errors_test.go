package errors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAny(t *testing.T) {
	errA := New("a")
	errB := New("b")
	errC := New("c")

	wrapped := Wrap(errB, "loading order")

	assert.True(t, IsAny(wrapped, errA, errB))
	assert.False(t, IsAny(wrapped, errA, errC))
	assert.False(t, IsAny(nil, errA))
	assert.False(t, IsAny(wrapped))
}

func TestCause(t *testing.T) {
	root := New("root")

	assert.Equal(t, root, Cause(Wrapf(WithStack(root), "attempt %d", 2)))
}
