//go:build unit

package errs_test

import (
	"errors"
	"testing"

	"roomescape-api/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	sentinel := errors.New("sentinel")

	t.Run("marked error matches both the cause and the mark", func(t *testing.T) {
		cause := errs.New("lower-level failure")
		err := errs.Mark(cause, sentinel)

		assert.ErrorIs(t, err, sentinel)
		assert.ErrorIs(t, err, cause)
		assert.Equal(t, cause.Error(), err.Error())
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		err := errs.Wrap(errs.Mark(errs.New("cause"), sentinel), "outer")
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("nil cause yields the mark itself", func(t *testing.T) {
		assert.ErrorIs(t, errs.Mark(nil, sentinel), sentinel)
	})
}
