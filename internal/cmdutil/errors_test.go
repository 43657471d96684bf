package cmdutil

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitError(t *testing.T) {
	err := &ExitError{Code: 0}
	assert.Equal(t, "exit status 0", err.Error())

	var exitErr *ExitError
	wrapped := fmt.Errorf("running pinner: %w", err)
	assert.True(t, errors.As(wrapped, &exitErr))
	assert.Equal(t, 0, exitErr.Code)
}

func TestFlagError(t *testing.T) {
	err := FlagErrorf("height must be a positive integer, got %q", "abc")

	var flagErr *FlagError
	assert.True(t, errors.As(err, &flagErr))
	assert.Contains(t, err.Error(), `"abc"`)
}
