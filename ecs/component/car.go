package component

// CarTuning holds the integrator constants.
type CarTuning struct {
	Acceleration  float64
	ReverseFactor float64
	MaxSpeed      float64
	Friction      float64
	TurnSpeed     float64
	BrakeFactor   float64
	DeadZone      float64
	SpeedScale    float64
}

func DefaultCarTuning() CarTuning {
	return CarTuning{
		Acceleration:  0.01,
		ReverseFactor: 0.5,
		MaxSpeed:      0.5,
		Friction:      0.95,
		TurnSpeed:     0.03,
		BrakeFactor:   0.9,
		DeadZone:      0.01,
		SpeedScale:    1000,
	}
}

var CarTuningComponent = NewComponent[CarTuning]()

// Speedometer is the display speed derived from the longitudinal velocity.
type Speedometer struct {
	Speed float64
}

var SpeedometerComponent = NewComponent[Speedometer]()

// SpawnPoint remembers where an entity started so it can be reset.
type SpawnPoint struct {
	Transform Transform
}

var SpawnPointComponent = NewComponent[SpawnPoint]()
