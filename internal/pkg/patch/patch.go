package patch

// SetIfPresent stores ptr's value under key when ptr is not nil. Used to build
// merge-style partial updates from optional request fields.
func SetIfPresent[T any](attrs map[string]any, key string, ptr *T) {
	if ptr != nil {
		attrs[key] = *ptr
	}
}
