package widget

import (
	"testing"

	"pomodoro/internal/core/timekeeper"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
)

func TestAppearanceFor(t *testing.T) {
	tests := []struct {
		name  string
		event timekeeper.Event
		want  Appearance
	}{
		{
			name:  "running",
			event: timekeeper.Event{Phase: timekeeper.PhaseRunning, SecondsRemaining: 1500},
			want:  Appearance{Text: "25:00", Hint: "focus", Fill: runningColor},
		},
		{
			name:  "idle",
			event: timekeeper.Event{Phase: timekeeper.PhaseIdle, SecondsRemaining: 3723},
			want:  Appearance{Text: "01:02:03", Hint: "paused", Fill: idleColor},
		},
		{
			name:  "finished flash on",
			event: timekeeper.Event{Phase: timekeeper.PhaseFinished, Flashing: true, FlashOn: true},
			want:  Appearance{Text: TimesUpText, Hint: "click to restart", Fill: flashOnColor},
		},
		{
			name:  "finished flash off",
			event: timekeeper.Event{Phase: timekeeper.PhaseFinished, Flashing: true},
			want:  Appearance{Text: TimesUpText, Hint: "click to restart", Fill: flashOffColor},
		},
		{
			name:  "finished after flashing",
			event: timekeeper.Event{Phase: timekeeper.PhaseFinished},
			want:  Appearance{Text: TimesUpText, Hint: "click to restart", Fill: flashOnColor},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, AppearanceFor(test.event))
		})
	}
}

func TestDialRoutesInput(t *testing.T) {
	var taps, pointer int
	face := newDial(func() { taps++ }, func() { pointer++ }, nil)

	face.Tapped(&fyne.PointEvent{})
	face.MouseIn(nil)
	face.MouseMoved(nil)
	face.MouseOut()

	assert.Equal(t, 1, taps)
	assert.Equal(t, 2, pointer)
}

func TestDialDragMovesWindow(t *testing.T) {
	var pointer int
	var dragged []float32
	face := newDial(nil, func() { pointer++ }, func(dx, dy float32) {
		dragged = append(dragged, dx, dy)
	})

	face.Dragged(&fyne.DragEvent{Dragged: fyne.Delta{DX: 4, DY: -2}})
	face.DragEnd()

	assert.Equal(t, []float32{4, -2}, dragged)
	assert.Equal(t, 1, pointer)
}

func TestDragByCarriesSubPixelRemainder(t *testing.T) {
	var moves [][2]int32
	dialWindow := &Window{move: func(dx, dy int32) {
		moves = append(moves, [2]int32{dx, dy})
	}}

	dialWindow.dragBy(0.4, 0, 1)
	dialWindow.dragBy(0.4, 0, 1)
	dialWindow.dragBy(0.4, -3, 2)

	assert.Equal(t, [][2]int32{{1, -6}}, moves)
}

func TestTypedKeyPressesOnSpaceAndEnter(t *testing.T) {
	var presses, keys int
	dialWindow := &Window{callbacks: Callbacks{
		OnPress: func() { presses++ },
		OnKey:   func() { keys++ },
	}}

	dialWindow.typedKey(&fyne.KeyEvent{Name: fyne.KeySpace})
	dialWindow.typedKey(&fyne.KeyEvent{Name: fyne.KeyReturn})
	dialWindow.typedKey(&fyne.KeyEvent{Name: fyne.KeyA})

	assert.Equal(t, 2, presses)
	assert.Equal(t, 1, keys)
}
