//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"institut-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("slot unavailable")

	t.Run("success: sentinel is visible to errors.Is", func(t *testing.T) {
		cause := errs.New("row locked")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("success: message stays the cause's message", func(t *testing.T) {
		cause := errors.New("connection refused")
		err := errs.Mark(cause, sentinel)

		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("success: survives further wrapping", func(t *testing.T) {
		err := errs.Mark(errs.New("boom"), sentinel)
		wrapped := fmt.Errorf("submit: %w", err)

		assert.ErrorIs(t, wrapped, sentinel)
	})

	t.Run("success: nil cause degrades to the mark itself", func(t *testing.T) {
		err := errs.Mark(nil, sentinel)

		assert.Equal(t, sentinel, err)
	})
}
