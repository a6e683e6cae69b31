package assemblers

// Compact returns the non-nil resources of items, preserving order. Use it when nil
// placeholders produced for nil sources are not wanted.
func Compact[T any](items []*T) []*T {
	if items == nil {
		return nil
	}
	out := make([]*T, 0, len(items))
	for _, it := range items {
		if it != nil {
			out = append(out, it)
		}
	}
	return out
}

// Pointers returns pointers to the elements of values, for feeding value slices to ToResources.
// The pointers alias values.
func Pointers[S any](values []S) []*S {
	if values == nil {
		return nil
	}
	out := make([]*S, len(values))
	for i := range values {
		out[i] = &values[i]
	}
	return out
}

// Values dereferences resources into a value slice. Nil resources become zero values.
func Values[T any](items []*T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, it := range items {
		if it != nil {
			out[i] = *it
		}
	}
	return out
}
