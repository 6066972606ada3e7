// Package debugui draws Dear ImGui inspector windows for a running session.
// Windows are registered as items on an Overlay, which runs as a system on a
// frame scheduler between the backend's BeginFrame and EndFrame.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/blockfall/engine"
)

// Item holds a Dear ImGui render function drawn once per frame.
type Item struct {
	Render func()
}

// InputState tracks whether ImGui is consuming mouse or keyboard input this
// frame. Front-ends should not forward keys to the game while it does.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// Overlay is a system that queues every item's render function on the frame
// command buffer.
type Overlay struct {
	Items []Item
	Input InputState
}

func (o *Overlay) Add(render func()) {
	o.Items = append(o.Items, Item{Render: render})
}

func (o *Overlay) Name() string { return "imgui" }

// Execute updates the input state and defers all render functions.
func (o *Overlay) Execute(frame *engine.Frame) {
	io := imgui.CurrentIO()
	o.Input.WantCaptureMouse = io.WantCaptureMouse()
	o.Input.WantCaptureKeyboard = io.WantCaptureKeyboard()

	for _, item := range o.Items {
		frame.Commands.Defer(item.Render)
	}
}
