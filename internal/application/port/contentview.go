package port

import "context"

// ContentView abstracts the sandboxed content context: a renderer that exposes
// its own history stack and a generic bidirectional message channel.
type ContentView interface {
	// GoBack steps the content context back one entry in its own history.
	GoBack(ctx context.Context) error

	// RunJavaScript evaluates a script inside the content context.
	// Used for shim injection; results are not observed.
	RunJavaScript(ctx context.Context, script string) error
}

// HostNavigator abstracts the host application's own screen stack.
type HostNavigator interface {
	// ExitViewer pops the content-viewer screen off the host's screen stack.
	ExitViewer(ctx context.Context)
}
