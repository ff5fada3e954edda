package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := errs.NewValidationError("quantity", "must be a positive integer")

	assert.Equal(t, "validation failed: quantity: must be a positive integer", err.Error())
	assert.ErrorIs(t, err, errs.ErrValidation)
	assert.NotErrorIs(t, err, errs.ErrNotFound)
}

func TestNotFoundError(t *testing.T) {
	err := errs.NewNotFoundError("menu item", 5)

	assert.Equal(t, "menu item not found: 5", err.Error())
	assert.ErrorIs(t, err, errs.ErrNotFound)

	wrapped := fmt.Errorf("add line: %w", err)
	var nf *errs.NotFoundError
	require.True(t, errors.As(wrapped, &nf))
	assert.Equal(t, "menu item", nf.Entity)
	assert.Equal(t, 5, nf.ID)
}

func TestForbiddenError(t *testing.T) {
	err := errs.NewForbiddenError("delete order", "requires manager or admin")

	assert.Equal(t, "forbidden: delete order: requires manager or admin", err.Error())
	assert.ErrorIs(t, err, errs.ErrForbidden)
}

func TestConflictError(t *testing.T) {
	err := errs.NewConflictError("title", "this title already exists")

	assert.Equal(t, "conflict: title: this title already exists", err.Error())
	assert.ErrorIs(t, err, errs.ErrConflict)
}

func TestTransactionError(t *testing.T) {
	t.Run("with cause", func(t *testing.T) {
		cause := errors.New("disk full")
		err := errs.NewTransactionError("place order", cause)

		assert.Equal(t, "transaction failed: place order (cause: disk full)", err.Error())
		assert.ErrorIs(t, err, errs.ErrTransactionFailed)
		assert.ErrorIs(t, err, cause)
	})

	t.Run("without cause", func(t *testing.T) {
		err := errs.NewTransactionError("place order", nil)

		assert.Equal(t, "transaction failed: place order", err.Error())
		assert.ErrorIs(t, err, errs.ErrTransactionFailed)
	})
}
