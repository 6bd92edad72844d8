//go:build !windows

package widget

// applyNativeStyle is a no-op where fyne exposes no window-level hooks.
func (dialWindow *Window) applyNativeStyle() {}

// moveNative is a no-op: fyne has no window position API outside the
// Windows handle.
func (dialWindow *Window) moveNative(dx, dy int32) {}
