// Package selection holds single-of-N exclusive selection state used by the
// dashboard panels (region, metric, variant, frequency, tone, length).
package selection

// Choice is an exclusive selection over a fixed, ordered option set.
// The zero value is not usable; construct with New.
type Choice[T comparable] struct {
	options []T
	index   int
}

// New returns a Choice over options with def selected. If def is not one of
// the options the first option is selected. options must not be empty.
func New[T comparable](options []T, def T) Choice[T] {
	if len(options) == 0 {
		panic("selection: empty option set")
	}
	opts := make([]T, len(options))
	copy(opts, options)
	c := Choice[T]{options: opts}
	if i := c.indexOf(def); i >= 0 {
		c.index = i
	}
	return c
}

// Value returns the selected option.
func (c Choice[T]) Value() T {
	return c.options[c.index]
}

// Index returns the position of the selected option.
func (c Choice[T]) Index() int {
	return c.index
}

// Options returns a copy of the option set in definition order.
func (c Choice[T]) Options() []T {
	out := make([]T, len(c.options))
	copy(out, c.options)
	return out
}

// Is reports whether v is the selected option.
func (c Choice[T]) Is(v T) bool {
	return c.Value() == v
}

// Select replaces the selected value. Values outside the option set are
// ignored and reported as false.
func (c *Choice[T]) Select(v T) bool {
	i := c.indexOf(v)
	if i < 0 {
		return false
	}
	c.index = i
	return true
}

// Next selects the following option, wrapping to the first.
func (c *Choice[T]) Next() T {
	c.index = (c.index + 1) % len(c.options)
	return c.Value()
}

// Prev selects the preceding option, wrapping to the last.
func (c *Choice[T]) Prev() T {
	c.index = (c.index - 1 + len(c.options)) % len(c.options)
	return c.Value()
}

func (c Choice[T]) indexOf(v T) int {
	for i, opt := range c.options {
		if opt == v {
			return i
		}
	}
	return -1
}
