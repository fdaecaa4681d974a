package component

// InputState is the snapshot of held driving keys for one frame.
type InputState struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Brake    bool
}

var InputComponent = NewComponent[InputState]()
