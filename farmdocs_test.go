package farmdocs_test

import (
	"testing"

	"github.com/fwojciec/farmdocs"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := farmdocs.Errorf(farmdocs.ENOTFOUND, "document %q not found", "test")

	assert.Equal(t, farmdocs.ENOTFOUND, farmdocs.ErrorCode(err))
	assert.Equal(t, "document \"test\" not found", farmdocs.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, farmdocs.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, farmdocs.ErrorMessage(nil))
}
