//go:build unit

package commands

import (
	"testing"

	"institut-booking/internal/infra"
	"institut-booking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMapAppointmentInsertErr(t *testing.T) {
	t.Run("user FK violation means the account is gone", func(t *testing.T) {
		err := infra.WrapRepoErr("failed to insert appointment", errs.New("fk violated"), infra.KindForeignKeyViolated)

		assert.ErrorIs(t, mapAppointmentInsertErr(err), errs.ErrNotAuthenticated)
	})

	t.Run("other failures stay retryable submission failures", func(t *testing.T) {
		cause := errs.New("connection reset")
		mapped := mapAppointmentInsertErr(cause)

		assert.ErrorIs(t, mapped, errs.ErrSubmissionFailed)
		assert.ErrorIs(t, mapped, cause)
	})
}
