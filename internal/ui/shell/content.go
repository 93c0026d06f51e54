package shell

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bnema/kiosk/internal/application/port"
	"github.com/bnema/kiosk/internal/bridge"
	"github.com/bnema/kiosk/internal/domain/entity"
)

// Compile-time interface check.
var _ port.ContentView = (*SimContentView)(nil)

// SimContentView is the shell's stand-in for the sandboxed content context:
// it keeps its own history stack and posts bridge messages over the content
// channel exactly as the injected shim would. Implements port.ContentView.
type SimContentView struct {
	mu      sync.Mutex
	history []string
	index   int

	injected []string

	onMessage    func(raw []byte)
	onNavigation func(signal entity.NavigationSignal)
}

// NewSimContentView creates a content view already navigated to startURL.
func NewSimContentView(startURL string) *SimContentView {
	return &SimContentView{
		history: []string{startURL},
	}
}

// SetOnMessage installs the content-channel consumer (the bridge router).
func (v *SimContentView) SetOnMessage(fn func(raw []byte)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onMessage = fn
}

// SetOnNavigation installs the navigation-event consumer.
func (v *SimContentView) SetOnNavigation(fn func(signal entity.NavigationSignal)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onNavigation = fn
}

// Navigate pushes a new entry, truncating any forward history.
func (v *SimContentView) Navigate(url string) {
	v.mu.Lock()
	v.history = append(v.history[:v.index+1], url)
	v.index = len(v.history) - 1
	v.mu.Unlock()
	v.notifyNavigation()
}

// GoBack steps the content history back one entry.
func (v *SimContentView) GoBack(context.Context) error {
	v.mu.Lock()
	if v.index == 0 {
		v.mu.Unlock()
		return fmt.Errorf("content history cannot go back")
	}
	v.index--
	v.mu.Unlock()
	v.notifyNavigation()
	return nil
}

// RunJavaScript records the injected script; the simulator has no JS engine
// of its own, the shim behavior is replicated by RequestMedia.
func (v *SimContentView) RunJavaScript(_ context.Context, script string) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.injected = append(v.injected, script)
	return nil
}

// CurrentURL returns the history entry the content is showing.
func (v *SimContentView) CurrentURL() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.history[v.index]
}

// CanGoBack reports whether the content's internal history can step back.
func (v *SimContentView) CanGoBack() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.index > 0
}

// RequestMedia emulates the page calling getUserMedia under the shim: one
// wire message per requested kind, fire-and-forget, before the (simulated)
// native call proceeds.
func (v *SimContentView) RequestMedia(video, audio bool) {
	if video {
		v.postMessage(bridge.PermissionCamera)
	}
	if audio {
		v.postMessage(bridge.PermissionMicrophone)
	}
}

func (v *SimContentView) postMessage(permission string) {
	v.mu.Lock()
	fn := v.onMessage
	v.mu.Unlock()
	if fn == nil {
		return
	}

	raw, err := json.Marshal(bridge.Message{
		Type:       bridge.TypePermissionRequest,
		Permission: permission,
	})
	if err != nil {
		return
	}
	fn(raw)
}

func (v *SimContentView) notifyNavigation() {
	v.mu.Lock()
	fn := v.onNavigation
	signal := entity.NavigationSignal{CanGoBack: v.index > 0}
	v.mu.Unlock()
	if fn != nil {
		fn(signal)
	}
}
