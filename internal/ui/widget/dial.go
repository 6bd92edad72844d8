package widget

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	fynewidget "fyne.io/fyne/v2/widget"
)

// dial is the round countdown face. Taps press the timer, hovering counts as
// pointer activity and dragging moves the window.
type dial struct {
	fynewidget.BaseWidget

	circle *canvas.Circle
	label  *canvas.Text
	hint   *canvas.Text

	onTap     func()
	onPointer func()
	onDrag    func(dx, dy float32)
}

var (
	_ fyne.Tappable     = (*dial)(nil)
	_ desktop.Hoverable = (*dial)(nil)
	_ fyne.Draggable    = (*dial)(nil)
)

func newDial(onTap, onPointer func(), onDrag func(dx, dy float32)) *dial {
	label := canvas.NewText("--:--", textColor)
	label.Alignment = fyne.TextAlignCenter
	label.TextStyle = fyne.TextStyle{Bold: true, Monospace: true}
	label.TextSize = 26

	hint := canvas.NewText("", textColor)
	hint.Alignment = fyne.TextAlignCenter
	hint.TextSize = 11

	face := &dial{
		circle:    canvas.NewCircle(idleColor),
		label:     label,
		hint:      hint,
		onTap:     onTap,
		onPointer: onPointer,
		onDrag:    onDrag,
	}
	face.ExtendBaseWidget(face)
	return face
}

func (face *dial) CreateRenderer() fyne.WidgetRenderer {
	text := container.NewVBox(face.label, face.hint)
	return fynewidget.NewSimpleRenderer(container.NewStack(face.circle, container.NewCenter(text)))
}

// apply must run on the fyne goroutine.
func (face *dial) apply(appearance Appearance) {
	face.circle.FillColor = appearance.Fill
	face.label.Text = appearance.Text
	if appearance.Text == TimesUpText {
		face.label.TextSize = 20
	} else {
		face.label.TextSize = 26
	}
	face.hint.Text = appearance.Hint
	face.circle.Refresh()
	face.label.Refresh()
	face.hint.Refresh()
}

func (face *dial) Tapped(*fyne.PointEvent) {
	if face.onTap != nil {
		face.onTap()
	}
}

func (face *dial) MouseIn(*desktop.MouseEvent) {
	face.pointer()
}

func (face *dial) MouseMoved(*desktop.MouseEvent) {
	face.pointer()
}

func (face *dial) MouseOut() {}

func (face *dial) Dragged(event *fyne.DragEvent) {
	face.pointer()
	if face.onDrag != nil {
		face.onDrag(event.Dragged.DX, event.Dragged.DY)
	}
}

func (face *dial) DragEnd() {}

func (face *dial) pointer() {
	if face.onPointer != nil {
		face.onPointer()
	}
}
