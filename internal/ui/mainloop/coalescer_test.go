package mainloop

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type idleQueue struct {
	fns []func()
}

func (q *idleQueue) post(fn func()) { q.fns = append(q.fns, fn) }

func (q *idleQueue) drain() {
	fns := q.fns
	q.fns = nil
	for _, fn := range fns {
		fn()
	}
}

func TestCoalescer_MergesResizeBurst(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	var width int
	for _, w := range []int{900, 1000, 1100, 1200} {
		c.Post(ResizeKey, func() { width = w })
	}

	require.Len(t, q.fns, 1)
	assert.Equal(t, 1, c.Pending())

	q.drain()
	assert.Equal(t, 1200, width, "latest callback wins")
	assert.Zero(t, c.Pending())

	c.Post(ResizeKey, func() { width = 800 })
	require.Len(t, q.fns, 1, "a new burst schedules again")
	q.drain()
	assert.Equal(t, 800, width)
}

func TestCoalescer_KeysAreIndependent(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	var ran []string
	c.Post(ResizeKey, func() { ran = append(ran, "resize") })
	c.Post("events", func() { ran = append(ran, "events") })

	require.Len(t, q.fns, 2)
	q.drain()
	assert.ElementsMatch(t, []string{"resize", "events"}, ran)
}

func TestCoalescer_DropsWorkAfterDestroy(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	ran := false
	c.Post(ResizeKey, func() { ran = true })
	c.Destroy()
	q.drain()
	assert.False(t, ran)

	c.Post(ResizeKey, func() { ran = true })
	assert.Empty(t, q.fns)
}

func TestCoalescer_IgnoresEmptyPosts(t *testing.T) {
	q := &idleQueue{}
	c := NewCoalescer(q.post)

	c.Post("", func() {})
	c.Post(ResizeKey, nil)
	assert.Empty(t, q.fns)
}

func TestNewCoalescer_PanicsOnNilPost(t *testing.T) {
	assert.Panics(t, func() { _ = NewCoalescer(nil) })
}
