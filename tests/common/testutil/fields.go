//go:build unit || e2e

package testutil

// Field overrides key in a DTO map. A nil value removes the key instead, so
// missing-required-field cases read the same as override cases.
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
