package entity

// NavigationSignal is the last-observed ability of the content context's
// internal history to step back. It is updated on every content navigation
// event and read synchronously by the back-action handler.
type NavigationSignal struct {
	CanGoBack bool
}
