package cli

import (
	"context"
	"io"
	"os"
	"testing"

	blockproctest "github.com/gabapcia/taowatch/internal/blockproc/mocks"
	blockscantest "github.com/gabapcia/taowatch/internal/blockscan/mocks"
	chainwatchtest "github.com/gabapcia/taowatch/internal/chainwatch/mocks"
	clitest "github.com/gabapcia/taowatch/internal/handlers/cli/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v3"
)

type testDeps struct {
	pipeline  *blockproctest.Service
	delivery  *blockproctest.Service
	chain     *chainwatchtest.Chain
	inspector *blockscantest.Service
	refresher *clitest.Refresher
}

func newTestDeps(t *testing.T) (testDeps, Dependencies) {
	t.Helper()

	m := testDeps{
		pipeline:  blockproctest.NewService(t),
		delivery:  blockproctest.NewService(t),
		chain:     chainwatchtest.NewChain(t),
		inspector: blockscantest.NewService(t),
		refresher: clitest.NewRefresher(t),
	}

	return m, Dependencies{
		Network:   "finney",
		Pipeline:  m.pipeline,
		Delivery:  m.delivery,
		Chain:     m.chain,
		Inspector: m.inspector,
		Refresher: m.refresher,
	}
}

func TestRun(t *testing.T) {
	// Save original os.Args to restore after tests
	originalArgs := os.Args
	defer func() {
		os.Args = originalArgs
	}()

	t.Run("should create CLI app with correct metadata", func(t *testing.T) {
		// Arrange
		_, deps := newTestDeps(t)
		os.Args = []string{"taowatch", "--help"}

		// Act
		err := Run(t.Context(), deps)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should register all expected commands", func(t *testing.T) {
		// Arrange
		_, deps := newTestDeps(t)

		// Act
		app := newApp(deps)

		// Assert
		names := make([]string, 0, len(app.Commands))
		for _, cmd := range app.Commands {
			names = append(names, cmd.Name)
		}
		assert.Equal(t, []string{"start", "inspect", "refresh"}, names)
	})

	t.Run("should handle start command", func(t *testing.T) {
		// Arrange
		m, deps := newTestDeps(t)
		m.refresher.EXPECT().Start(mock.Anything).Return(nil).Once()
		m.refresher.EXPECT().Close().Return().Once()
		m.pipeline.EXPECT().Start(mock.Anything).Return(assert.AnError).Once()

		os.Args = []string{"taowatch", "start"}

		// Act
		err := Run(t.Context(), deps)

		// Assert
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("should handle refresh command", func(t *testing.T) {
		// Arrange
		m, deps := newTestDeps(t)
		m.refresher.EXPECT().Refresh(mock.Anything).Return(nil).Once()

		os.Args = []string{"taowatch", "refresh"}

		// Act
		err := Run(t.Context(), deps)

		// Assert
		assert.NoError(t, err)
	})

	t.Run("should handle inspect command with missing flags", func(t *testing.T) {
		// Arrange
		_, deps := newTestDeps(t)
		os.Args = []string{"taowatch", "inspect"}

		// Act
		err := Run(t.Context(), deps)

		// Assert
		assert.Error(t, err)
	})

	t.Run("should report unknown command without exiting", func(t *testing.T) {
		// Arrange
		_, deps := newTestDeps(t)
		app := newApp(deps)
		app.Writer = io.Discard
		app.ErrWriter = io.Discard
		app.ExitErrHandler = func(context.Context, *cli.Command, error) {}

		// Act
		err := app.Run(t.Context(), []string{"taowatch", "unknown"})

		// Assert
		var exitErr cli.ExitCoder
		require.ErrorAs(t, err, &exitErr)
		assert.Equal(t, 3, exitErr.ExitCode())
	})
}
