package engine

// System represents one phase of a frame. Systems run in registration order, so a
// system registered earlier observes none of the effects of later ones within a frame.
// Implementations keep whatever state they need between frames on their own struct.
type System interface {
	Execute(frame *Frame)
}

// SystemFunc adapts a plain function to the System interface.
type SystemFunc func(frame *Frame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *Frame) {
	f(frame)
}
