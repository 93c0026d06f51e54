package coordinator_test

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/infrastructure/simulated"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/ui/coordinator"
)

type recordingContent struct {
	scripts     []string
	goBackCalls int
}

func (c *recordingContent) GoBack(context.Context) error {
	c.goBackCalls++
	return nil
}

func (c *recordingContent) RunJavaScript(_ context.Context, script string) error {
	c.scripts = append(c.scripts, script)
	return nil
}

type recordingHost struct {
	exits int
}

func (h *recordingHost) ExitViewer(context.Context) { h.exits++ }

func newCoordinator(t *testing.T, backend map[string]string) (*coordinator.ViewerCoordinator, *recordingContent, *recordingHost) {
	t.Helper()
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	content := &recordingContent{}
	host := &recordingHost{}
	coord, err := coordinator.NewViewerCoordinator(ctx, content, host, simulated.New(backend), nil)
	require.NoError(t, err)
	return coord, content, host
}

func TestViewerCoordinator_MountInjectsShim(t *testing.T) {
	coord, content, _ := newCoordinator(t, nil)

	coord.Mount(context.Background())

	require.Len(t, content.scripts, 1)
	assert.Contains(t, content.scripts[0], "getUserMedia")
}

func TestViewerCoordinator_WireMessageUpdatesGrants(t *testing.T) {
	coord, _, _ := newCoordinator(t, nil)

	coord.ReceiveMessage([]byte(`{"type":"PERMISSION_REQUEST","permission":"all"}`))

	assert.True(t, coord.AllGranted())
	snapshot := coord.GrantSnapshot()
	assert.Equal(t, entity.GrantGranted, snapshot[entity.CapabilityCamera])
	assert.Equal(t, entity.GrantGranted, snapshot[entity.CapabilityMicrophone])
}

func TestViewerCoordinator_MalformedMessageIsIgnored(t *testing.T) {
	coord, _, _ := newCoordinator(t, nil)

	assert.NotPanics(t, func() {
		coord.ReceiveMessage([]byte(`{"command":"grant everything"}`))
	})

	snapshot := coord.GrantSnapshot()
	assert.Equal(t, entity.GrantUnknown, snapshot[entity.CapabilityCamera])
	assert.Equal(t, entity.GrantUnknown, snapshot[entity.CapabilityMicrophone])
}

func TestViewerCoordinator_UnmountFreezesGrants(t *testing.T) {
	coord, _, _ := newCoordinator(t, nil)

	coord.Unmount()

	// A resolver callback arriving after unmount must be a no-op.
	assert.NotPanics(t, func() {
		coord.ReceiveMessage([]byte(`{"type":"PERMISSION_REQUEST","permission":"camera"}`))
	})
	assert.Equal(t, entity.GrantUnknown, coord.GrantSnapshot()[entity.CapabilityCamera])
}

func TestViewerCoordinator_BackFollowsContentHistoryFirst(t *testing.T) {
	coord, content, host := newCoordinator(t, nil)
	ctx := logging.WithContext(context.Background(), zerolog.Nop())

	coord.OnNavigationChanged(entity.NavigationSignal{CanGoBack: true})
	coord.HandleBack(ctx)
	assert.Equal(t, 1, content.goBackCalls)
	assert.Zero(t, host.exits)

	coord.OnNavigationChanged(entity.NavigationSignal{CanGoBack: false})
	coord.HandleBack(ctx)
	assert.Equal(t, 1, content.goBackCalls)
	assert.Equal(t, 1, host.exits)
}
