package errs_test

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"

	"github.com/complexo-io/complexo/errs"
)

func TestKindNewAndIs(t *testing.T) {
	err := errs.InputInvalid.New("empty recurrence terms")
	assert.True(t, errs.InputInvalid.Is(err))
	assert.False(t, errs.Cancelled.Is(err))
}

func TestPersistenceFailureWrapsCause(t *testing.T) {
	cause := errors.New("disk full")
	err := errs.PersistenceFailure.Wrap(cause, "write calibration file")
	assert.True(t, errs.PersistenceFailure.Is(err))
	assert.Equal(t, cause.Error(), errors.Cause(err).Error())
}
