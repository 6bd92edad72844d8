// Package widget renders the floating Pomodoro dial.
package widget

import (
	"pomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

const defaultDiameter = float32(140)

// Config defines the dial window.
type Config struct {
	Title    string
	Diameter float32
	Opacity  uint8
}

// Callbacks are invoked from the fyne goroutine and must not block.
type Callbacks struct {
	OnPress   func()
	OnPointer func()
	OnKey     func()
	OnFocus   func()
}

// Window manages the dial window.
type Window struct {
	window    fyne.Window
	dial      *dial
	config    Config
	callbacks Callbacks

	// move shifts the native window by whole pixels.
	move         func(dx, dy int32)
	dragX, dragY float32
}

type splashWindowDriver interface {
	CreateSplashWindow() fyne.Window
}

// New creates the dial window without showing it.
func New(app fyne.App, config Config, callbacks Callbacks) *Window {
	if config.Diameter <= 0 {
		config.Diameter = defaultDiameter
	}
	if config.Title == "" {
		config.Title = "Pomodoro"
	}

	window := app.NewWindow(config.Title)
	if driver, ok := app.Driver().(splashWindowDriver); ok {
		// Splash windows are undecorated.
		window = driver.CreateSplashWindow()
	}
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}
	window.SetPadded(false)

	dialWindow := &Window{
		window:    window,
		config:    config,
		callbacks: callbacks,
	}
	dialWindow.move = dialWindow.moveNative
	dialWindow.dial = newDial(callbacks.OnPress, callbacks.OnPointer, func(dx, dy float32) {
		dialWindow.dragBy(dx, dy, window.Canvas().Scale())
	})

	window.SetContent(dialWindow.dial)
	window.Resize(fyne.NewSize(config.Diameter, config.Diameter))
	window.SetFixedSize(true)
	window.Canvas().SetOnTypedKey(dialWindow.typedKey)
	window.SetCloseIntercept(window.Hide)

	app.Lifecycle().SetOnEnteredForeground(func() {
		if callbacks.OnFocus != nil {
			callbacks.OnFocus()
		}
	})

	return dialWindow
}

// Show brings the dial up and keeps it above other windows where the
// platform allows it.
func (dialWindow *Window) Show() {
	dialWindow.window.Show()
	dialWindow.applyNativeStyle()
	dialWindow.window.RequestFocus()
}

// Hide hides the dial; the timer keeps running.
func (dialWindow *Window) Hide() {
	dialWindow.window.Hide()
}

// Apply renders a TimeKeeper state. Safe to call from any goroutine.
func (dialWindow *Window) Apply(event timekeeper.Event) {
	appearance := AppearanceFor(event)
	fyne.Do(func() {
		dialWindow.dial.apply(appearance)
	})
}

// Watch applies events until the channel closes.
func (dialWindow *Window) Watch(events <-chan timekeeper.Event) {
	for event := range events {
		dialWindow.Apply(event)
	}
}

// dragBy converts a drag delta in canvas units to pixels, carrying the
// fractional remainder into the next drag event.
func (dialWindow *Window) dragBy(dx, dy, scale float32) {
	if scale <= 0 {
		scale = 1
	}
	dialWindow.dragX += dx * scale
	dialWindow.dragY += dy * scale
	pixelsX, pixelsY := int32(dialWindow.dragX), int32(dialWindow.dragY)
	if pixelsX == 0 && pixelsY == 0 {
		return
	}
	dialWindow.dragX -= float32(pixelsX)
	dialWindow.dragY -= float32(pixelsY)
	dialWindow.move(pixelsX, pixelsY)
}

func (dialWindow *Window) typedKey(event *fyne.KeyEvent) {
	switch event.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		if dialWindow.callbacks.OnPress != nil {
			dialWindow.callbacks.OnPress()
		}
	default:
		if dialWindow.callbacks.OnKey != nil {
			dialWindow.callbacks.OnKey()
		}
	}
}
