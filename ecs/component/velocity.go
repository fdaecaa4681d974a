package component

import "github.com/jakecoffman/cp"

// Velocity holds the car's planar velocity. X is lateral, Y is longitudinal where
// negative Y drives forward.
type Velocity struct {
	Linear cp.Vector
}

var VelocityComponent = NewComponent[Velocity]()
