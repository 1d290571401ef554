// Package ptr has small generic helpers for the pointer-valued option
// structs used by the config package, where nil means "not set".
package ptr

// FromValue returns a pointer to a copy of v.
func FromValue[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *x, or nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}
	return FromValue(*x)
}

// CloneOr clones x when it is set and fallback otherwise.
func CloneOr[T any](x *T, fallback *T) *T {
	if x != nil {
		return Clone(x)
	}
	return Clone(fallback)
}

// CloneSlice copies x, keeping nil as nil.
func CloneSlice[T any](x []T) []T {
	if x == nil {
		return nil
	}
	return append(make([]T, 0, len(x)), x...)
}

// CloneSliceOr clones x when it is non-nil and fallback otherwise.
func CloneSliceOr[T any](x []T, fallback []T) []T {
	if x != nil {
		return CloneSlice(x)
	}
	return CloneSlice(fallback)
}

// FromPtrOr dereferences x, or returns v when x is nil.
func FromPtrOr[T any](x *T, v T) T {
	if x == nil {
		return v
	}
	return *x
}
