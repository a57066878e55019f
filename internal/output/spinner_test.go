package output

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRunWithSpinner_NoTTYRunsActionDirectly(t *testing.T) {
	// go test never attaches stdout to a terminal.
	called := false
	err := RunWithSpinner(context.Background(), func() error {
		called = true
		return nil
	}, WithTitle("Compiling"))

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestRunWithSpinner_PropagatesError(t *testing.T) {
	boom := errors.New("boom")
	err := RunWithSpinner(context.Background(), func() error { return boom }, WithEnabled(false))
	assert.ErrorIs(t, err, boom)
}
