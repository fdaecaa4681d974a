package component

// HUD carries the rounded values shown on screen.
type HUD struct {
	Speed int
	X     int
	Z     int
}

var HUDComponent = NewComponent[HUD]()
