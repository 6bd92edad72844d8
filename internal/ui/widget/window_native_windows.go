//go:build windows

package widget

import (
	"unsafe"

	"fyne.io/fyne/v2/driver"
	"golang.org/x/sys/windows"
)

const (
	gwlExStyle  int32 = -20
	hwndTopmost int32 = -1
)

const (
	wsExLayered   = 0x00080000
	wsExToolWin   = 0x00000080
	lwaAlpha      = 0x2
	swpNoSize     = 0x0001
	swpNoMove     = 0x0002
	swpNoZOrder   = 0x0004
	swpNoActivate = 0x0010
)

var (
	user32DLL                      = windows.NewLazySystemDLL("user32.dll")
	procGetWindowLongPtrW          = user32DLL.NewProc("GetWindowLongPtrW")
	procSetWindowLongPtrW          = user32DLL.NewProc("SetWindowLongPtrW")
	procSetLayeredWindowAttributes = user32DLL.NewProc("SetLayeredWindowAttributes")
	procSetWindowPos               = user32DLL.NewProc("SetWindowPos")
	procGetWindowRect              = user32DLL.NewProc("GetWindowRect")
)

// applyNativeStyle pins the dial above other windows, hides it from the
// taskbar and applies the configured opacity.
func (dialWindow *Window) applyNativeStyle() {
	nativeWindow, ok := dialWindow.window.(driver.NativeWindow)
	if !ok {
		return
	}
	alpha := dialWindow.config.Opacity

	nativeWindow.RunNative(func(context any) {
		hwnd := windowHandle(context)
		if hwnd == 0 {
			return
		}

		style, _, _ := procGetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle))
		wanted := style | wsExToolWin
		if alpha > 0 {
			wanted |= wsExLayered
		}
		if wanted != style {
			procSetWindowLongPtrW.Call(hwnd, int32ToUintptr(gwlExStyle), wanted)
		}
		if alpha > 0 {
			procSetLayeredWindowAttributes.Call(hwnd, 0, uintptr(alpha), uintptr(lwaAlpha))
		}
		procSetWindowPos.Call(hwnd, int32ToUintptr(hwndTopmost), 0, 0, 0, 0, swpNoMove|swpNoSize|swpNoActivate)
	})
}

// moveNative shifts the dial by a pixel delta, keeping size and z-order.
func (dialWindow *Window) moveNative(dx, dy int32) {
	nativeWindow, ok := dialWindow.window.(driver.NativeWindow)
	if !ok {
		return
	}
	nativeWindow.RunNative(func(context any) {
		hwnd := windowHandle(context)
		if hwnd == 0 {
			return
		}
		var rect windows.Rect
		if result, _, _ := procGetWindowRect.Call(hwnd, uintptr(unsafe.Pointer(&rect))); result == 0 {
			return
		}
		procSetWindowPos.Call(hwnd, 0,
			int32ToUintptr(rect.Left+dx), int32ToUintptr(rect.Top+dy), 0, 0,
			swpNoSize|swpNoZOrder|swpNoActivate)
	})
}

func windowHandle(context any) uintptr {
	switch value := context.(type) {
	case driver.WindowsWindowContext:
		return value.HWND
	case *driver.WindowsWindowContext:
		return value.HWND
	}
	return 0
}

func int32ToUintptr(value int32) uintptr {
	return uintptr(uint32(value))
}
