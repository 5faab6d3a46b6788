package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNotNullErrorFormatsMessage(t *testing.T) {
	err := NewNotNullError("reference")

	require.Equal(t, "reference", err.Argument)
	require.Equal(t, "'reference' must not be null", err.Error())
}

func TestInvalidArgumentErrorMatchesSentinel(t *testing.T) {
	var err error = NewInvalidArgumentError("url", "only file URLs are supported")

	require.ErrorIs(t, err, ErrInvalidArgument)
	require.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrInvalidArgument)
	require.False(t, errors.Is(fmt.Errorf("boom"), ErrInvalidArgument))
}

func TestInvalidArgumentErrorCanBeUnwrappedWithAs(t *testing.T) {
	err := fmt.Errorf("wrapped: %w", NewNotNullError("resource"))

	var iae *InvalidArgumentError
	require.True(t, errors.As(err, &iae))
	require.Equal(t, "resource", iae.Argument)
}
