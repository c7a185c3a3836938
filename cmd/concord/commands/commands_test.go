package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/concord-tools/concord/cmd/concord/commands"
	"github.com/concord-tools/concord/internal/app"
	"github.com/concord-tools/concord/internal/build"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockApp struct {
	checkFunc func(ctx context.Context, opts app.CheckOptions) error
}

func (m *mockApp) Check(ctx context.Context, opts app.CheckOptions) error {
	if m.checkFunc != nil {
		return m.checkFunc(ctx, opts)
	}
	return nil
}

func TestCommands_Check(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var capturedOpts app.CheckOptions
		called := false

		mock := &mockApp{
			checkFunc: func(_ context.Context, opts app.CheckOptions) error {
				capturedOpts = opts
				called = true
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check", "some/dir", "--list", "--ci"})

		err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
		assert.Equal(t, "some/dir", capturedOpts.Dir)
		assert.True(t, capturedOpts.List)
		assert.True(t, capturedOpts.CI)
	})

	t.Run("defaults to current directory", func(t *testing.T) {
		var capturedOpts app.CheckOptions

		mock := &mockApp{
			checkFunc: func(_ context.Context, opts app.CheckOptions) error {
				capturedOpts = opts
				return nil
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, ".", capturedOpts.Dir)
		assert.False(t, capturedOpts.List)
		assert.False(t, capturedOpts.CI)
	})

	t.Run("returns error on check failure", func(t *testing.T) {
		mock := &mockApp{
			checkFunc: func(_ context.Context, _ app.CheckOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock)
		cli.SetArgs([]string{"check"})
		// Silence output to avoid polluting test logs
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("rejects extra arguments", func(t *testing.T) {
		cli := commands.New(&mockApp{})
		cli.SetArgs([]string{"check", "a", "b"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})
	cli.SetArgs([]string{"version"})

	var out bytes.Buffer
	cli.SetOutput(&out, new(bytes.Buffer))

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, out.String(), "concord version "+build.Version)
}
