// Package shim carries the script injected into the content execution context.
// The shim wraps the content's media-acquisition entry point so the host gets
// advance notice of capability requests over the bridge; it never decides
// grant outcomes and never blocks the original call, because the OS-level
// prompt behind the native call is the real gate.
package shim

import (
	"fmt"

	"github.com/grafana/sobek"
)

// MessageHandlerName is the name of the content-message channel endpoint the
// shim posts to. It must match the channel the host router consumes.
const MessageHandlerName = "kiosk"

// interceptScript wraps navigator.mediaDevices.getUserMedia. Every call
// requesting video and/or audio first posts one PERMISSION_REQUEST per
// requested kind, then delegates to the original entry point unmodified.
// Idempotent across repeated injection via the __kioskShim marker.
const interceptScript = `(function() {
  if (!navigator.mediaDevices || !navigator.mediaDevices.getUserMedia) { return; }
  if (navigator.mediaDevices.__kioskShim) { return; }
  navigator.mediaDevices.__kioskShim = true;

  var original = navigator.mediaDevices.getUserMedia.bind(navigator.mediaDevices);

  function notify(permission) {
    try {
      window.webkit.messageHandlers.%[1]s.postMessage(
        JSON.stringify({ type: 'PERMISSION_REQUEST', permission: permission })
      );
    } catch (e) {
      // Channel not available; the OS prompt still gates the call.
    }
  }

  navigator.mediaDevices.getUserMedia = function(constraints) {
    try {
      if (constraints && constraints.video) { notify('camera'); }
      if (constraints && constraints.audio) { notify('microphone'); }
    } catch (e) {}
    return original(constraints);
  };
})();`

// Script returns the interception script ready for injection.
func Script() string {
	return fmt.Sprintf(interceptScript, MessageHandlerName)
}

// Validate compiles the script and reports template breakage before any
// injection attempt. Injection with a script that does not parse would fail
// silently inside the content context.
func Validate() error {
	if _, err := sobek.Compile("kiosk-shim.js", Script(), true); err != nil {
		return fmt.Errorf("interception shim does not compile: %w", err)
	}
	return nil
}
