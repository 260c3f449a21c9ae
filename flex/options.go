// SPDX-License-Identifier: MIT

package flex

// ---------- Defaults ----------

const (
	// DefaultCapacity is the entry capacity reserved beyond the initial domain.
	// 0 means "size for the domain only".
	DefaultCapacity = 0

	// DefaultRowCapacity is the row key capacity reserved beyond the row domain.
	DefaultRowCapacity = 0

	// DefaultColCapacity is the column key capacity reserved beyond the column domain.
	DefaultColCapacity = 0
)

const (
	panicCapacityInvalid    = "flex: WithCapacity: capacity must be >= 0"
	panicRowCapacityInvalid = "flex: WithRowCapacity: capacity must be >= 0"
	panicColCapacityInvalid = "flex: WithColCapacity: capacity must be >= 0"
)

// Option mutates construction options. Constructors panic only on
// nonsensical values (programmer error).
type Option func(*Options)

// Options holds the resolved construction settings.
// Fields are unexported; public constructors accept ...Option.
type Options struct {
	capacity    int // entries; DefaultCapacity
	rowCapacity int // row keys; DefaultRowCapacity
	colCapacity int // column keys; DefaultColCapacity
}

// WithCapacity reserves room for n entries so later Set calls on new keys do
// not rehash. The effective size is max(n, len(domain)).
// Panics when n < 0.
func WithCapacity(n int) Option {
	if n < 0 {
		panic(panicCapacityInvalid)
	}

	return func(o *Options) { o.capacity = n }
}

// WithRowCapacity reserves room for n row keys of a Matrix.
// Panics when n < 0.
func WithRowCapacity(n int) Option {
	if n < 0 {
		panic(panicRowCapacityInvalid)
	}

	return func(o *Options) { o.rowCapacity = n }
}

// WithColCapacity reserves room for n column keys of a Matrix.
// Panics when n < 0.
func WithColCapacity(n int) Option {
	if n < 0 {
		panic(panicColCapacityInvalid)
	}

	return func(o *Options) { o.colCapacity = n }
}

// gatherOptions applies opts over the defaults. Nil options are skipped.
func gatherOptions(opts ...Option) Options {
	o := Options{
		capacity:    DefaultCapacity,
		rowCapacity: DefaultRowCapacity,
		colCapacity: DefaultColCapacity,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
