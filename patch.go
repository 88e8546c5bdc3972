package club

// Opt is a three-state update descriptor used by the Update* operations.
//
// The zero value means "leave the field unchanged". Set(v) means "set the
// field to v". Null() means "clear the field" and is only meaningful for
// nullable fields. This makes a partial update unambiguous: clearing a
// nullable field and not touching it are different inputs.
type Opt[T any] struct {
	set  bool
	null bool
	v    T
}

// Set returns a descriptor that sets the field to v.
func Set[T any](v T) Opt[T] { return Opt[T]{set: true, v: v} }

// Null returns a descriptor that clears a nullable field.
func Null[T any]() Opt[T] { return Opt[T]{set: true, null: true} }

// IsSet reports whether the field was explicitly provided (set or cleared).
func (o Opt[T]) IsSet() bool { return o.set }

// IsNull reports whether the field was explicitly cleared.
func (o Opt[T]) IsNull() bool { return o.set && o.null }

// Value returns the provided value. Only meaningful when IsSet and not IsNull.
func (o Opt[T]) Value() T { return o.v }

// Ptr returns the provided value as a pointer: nil when the field was
// cleared, a pointer to the value when it was set.
func (o Opt[T]) Ptr() *T {
	if !o.set || o.null {
		return nil
	}
	v := o.v
	return &v
}

// apply overwrites dst when the descriptor carries a value. Clearing is not
// meaningful for non-nullable fields and is ignored.
func (o Opt[T]) apply(dst *T) {
	if o.set && !o.null {
		*dst = o.v
	}
}

// applyPtr overwrites a nullable field: Set stores a pointer to the value,
// Null stores nil, unchanged leaves it alone.
func (o Opt[T]) applyPtr(dst **T) {
	if !o.set {
		return
	}
	*dst = o.Ptr()
}
