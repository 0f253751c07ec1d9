package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"db-wipe/internal/errs"

	"github.com/stretchr/testify/assert"
)

func TestError_Format(t *testing.T) {
	err := errs.New(errs.ErrKindInvalidArguments, "bad flags")
	assert.Equal(t, "[invalid_arguments] bad flags", err.Error())

	cause := errors.New("Table 'shop.users' doesn't exist")
	wrapped := errs.Wrap(errs.ErrKindStatementFailed, "statement failed", cause)
	assert.Equal(t, "[statement_failed] statement failed: Table 'shop.users' doesn't exist", wrapped.Error())
	assert.ErrorIs(t, wrapped, cause)
}

func TestPredicates_FollowChain(t *testing.T) {
	base := errs.New(errs.ErrKindConnectionFailed, "dial tcp: refused")
	err := fmt.Errorf("open: %w", base)

	assert.True(t, errs.IsConnectionFailed(err))
	assert.False(t, errs.IsTimeout(err))
	assert.Equal(t, errs.ErrKindUnknown, errs.KindOf(errors.New("plain")))
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", errs.Message(nil))
	assert.Equal(t, "plain", errs.Message(errors.New("plain")))
	assert.Equal(t, "no cause", errs.Message(errs.New(errs.ErrKindUnknown, "no cause")))

	cause := errors.New("Error 1146: Table 'x' doesn't exist")
	assert.Equal(t, cause.Error(), errs.Message(errs.Wrap(errs.ErrKindStatementFailed, "exec", cause)))
}
