package widget

import (
	"image/color"

	"pomodoro/internal/core/session"
	"pomodoro/internal/core/timekeeper"
)

// TimesUpText replaces the countdown while finished.
const TimesUpText = "Time's up!"

var (
	runningColor  = color.NRGBA{R: 46, G: 160, B: 67, A: 235}
	idleColor     = color.NRGBA{R: 48, G: 110, B: 200, A: 235}
	flashOnColor  = color.NRGBA{R: 214, G: 48, B: 49, A: 245}
	flashOffColor = color.NRGBA{R: 240, G: 140, B: 30, A: 245}
	textColor     = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

// Appearance is what the dial shows for one state.
type Appearance struct {
	Text string
	Hint string
	Fill color.NRGBA
}

// AppearanceFor maps a TimeKeeper state to dial visuals.
func AppearanceFor(event timekeeper.Event) Appearance {
	switch event.Phase {
	case timekeeper.PhaseFinished:
		fill := flashOnColor
		if event.Flashing && !event.FlashOn {
			fill = flashOffColor
		}
		return Appearance{Text: TimesUpText, Hint: "click to restart", Fill: fill}
	case timekeeper.PhaseRunning:
		return Appearance{Text: session.FormatSeconds(event.SecondsRemaining), Hint: "focus", Fill: runningColor}
	default:
		return Appearance{Text: session.FormatSeconds(event.SecondsRemaining), Hint: "paused", Fill: idleColor}
	}
}
