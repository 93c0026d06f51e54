package navigation_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
	"github.com/bnema/kiosk/internal/navigation"
)

type fakeContent struct {
	goBackCalls int
	goBackErr   error
}

func (f *fakeContent) GoBack(context.Context) error {
	f.goBackCalls++
	return f.goBackErr
}

func (f *fakeContent) RunJavaScript(context.Context, string) error { return nil }

type fakeHost struct {
	exitCalls int
}

func (f *fakeHost) ExitViewer(context.Context) { f.exitCalls++ }

func navContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func TestSynchronizer_ContentHistoryConsumesBackAction(t *testing.T) {
	content := &fakeContent{}
	host := &fakeHost{}
	sync := navigation.NewSynchronizer(content, host)

	sync.Update(entity.NavigationSignal{CanGoBack: true})
	sync.HandleBack(navContext())

	assert.Equal(t, 1, content.goBackCalls)
	assert.Zero(t, host.exitCalls, "back must never exit the viewer while content can go back")
}

func TestSynchronizer_ExhaustedHistoryExitsViewerOnce(t *testing.T) {
	content := &fakeContent{}
	host := &fakeHost{}
	sync := navigation.NewSynchronizer(content, host)

	sync.Update(entity.NavigationSignal{CanGoBack: false})
	sync.HandleBack(navContext())

	assert.Zero(t, content.goBackCalls)
	assert.Equal(t, 1, host.exitCalls)
}

func TestSynchronizer_DefaultSignalExitsViewer(t *testing.T) {
	content := &fakeContent{}
	host := &fakeHost{}
	sync := navigation.NewSynchronizer(content, host)

	// No navigation event observed yet.
	sync.HandleBack(navContext())

	assert.Equal(t, 1, host.exitCalls)
}

func TestSynchronizer_FailedContentStepStaysConsumed(t *testing.T) {
	content := &fakeContent{goBackErr: fmt.Errorf("content context gone")}
	host := &fakeHost{}
	sync := navigation.NewSynchronizer(content, host)

	sync.Update(entity.NavigationSignal{CanGoBack: true})
	sync.HandleBack(navContext())

	assert.Equal(t, 1, content.goBackCalls)
	assert.Zero(t, host.exitCalls)
}

func TestSynchronizer_SignalUpdatesSwitchBehavior(t *testing.T) {
	content := &fakeContent{}
	host := &fakeHost{}
	sync := navigation.NewSynchronizer(content, host)

	sync.Update(entity.NavigationSignal{CanGoBack: true})
	sync.HandleBack(navContext())
	sync.Update(entity.NavigationSignal{CanGoBack: false})
	sync.HandleBack(navContext())

	assert.Equal(t, 1, content.goBackCalls)
	assert.Equal(t, 1, host.exitCalls)
}
