package errs_test

import (
	"errors"
	"testing"

	"hydrohub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", "fbe7dcbe-7e84-4dd5-a355-0e9e02e1c2c3")

		assert.Equal(t, "orderId", err.ParamName)
		assert.Equal(t, "fbe7dcbe-7e84-4dd5-a355-0e9e02e1c2c3", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: fbe7dcbe-7e84-4dd5-a355-0e9e02e1c2c3", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewObjectNotFoundErrorWithCause("parkedOrderId", "42", cause)

		assert.Equal(t, "parkedOrderId", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: parkedOrderId, ID is: 42 (cause: record not found)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("taxPercent")

		assert.Equal(t, "taxPercent", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: taxPercent", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("percent cannot be negative")
		err := errs.NewValueIsInvalidErrorWithCause("taxPercent", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: taxPercent (cause: percent cannot be negative)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("quantity", -3, 1, 1000)

		assert.Equal(t, "quantity", err.ParamName)
		assert.Equal(t, -3, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 1000, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: -3 is quantity, min value is 1, max value is 1000", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitizes_newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("note", "line\nbreak", 0, 10)
		assert.Contains(t, err.Error(), "line break")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("staffId")

		assert.Equal(t, "staffId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: staffId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing field")
		err := errs.NewValueIsRequiredErrorWithCause("staffId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: staffId (cause: missing field)", err.Error())
	})
}

func TestVersionIsInvalidError(t *testing.T) {
	t.Run("NewVersionIsInvalidError", func(t *testing.T) {
		err := errs.NewVersionIsInvalidError("revision")

		assert.Equal(t, "revision", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "version is invalid: revision", err.Error())
		assert.Equal(t, errs.ErrVersionIsInvalid, err.Unwrap())
	})

	t.Run("NewVersionIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("negative revision")
		err := errs.NewVersionIsInvalidErrorWithCause("revision", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "version is invalid: revision (cause: negative revision)", err.Error())
	})
}

func TestConcurrencyConflictError(t *testing.T) {
	t.Run("NewConcurrencyConflictError", func(t *testing.T) {
		err := errs.NewConcurrencyConflictError("order", "abc-123")

		assert.Equal(t, "order", err.ParamName)
		assert.Equal(t, "abc-123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "concurrent modification detected: param is: order, ID is: abc-123", err.Error())
		assert.Equal(t, errs.ErrConcurrencyConflict, err.Unwrap())
	})

	t.Run("NewConcurrencyConflictErrorWithCause", func(t *testing.T) {
		cause := errors.New("0 rows affected")
		err := errs.NewConcurrencyConflictErrorWithCause("order", "abc-123", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"concurrent modification detected: param is: order, ID is: abc-123 (cause: 0 rows affected)",
			err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("messages_match_expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "version is invalid", errs.ErrVersionIsInvalid.Error())
		assert.Equal(t, "concurrent modification detected", errs.ErrConcurrencyConflict.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is_works_with_typed_errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("orderId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("discount"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("quantity", 0, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("customerId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewVersionIsInvalidError("revision"), errs.ErrVersionIsInvalid)
		require.ErrorIs(t, errs.NewConcurrencyConflictError("order", "123"), errs.ErrConcurrencyConflict)
	})
}
