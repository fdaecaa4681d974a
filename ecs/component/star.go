package component

type Star struct {
	Radius  float64
	Opacity float64
}

var StarComponent = NewComponent[Star]()

// Twinkle configures how often and how far star opacity flickers.
type Twinkle struct {
	Chance     float64
	MinOpacity float64
}

var TwinkleComponent = NewComponent[Twinkle]()
