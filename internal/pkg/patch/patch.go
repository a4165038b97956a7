package patch

// Coalesce resolves an optional PATCH field: the pointed-to value when the
// client sent one, the current value otherwise.
func Coalesce[T any](ptr *T, current T) T {
	if ptr == nil {
		return current
	}
	return *ptr
}
