package component

type CarTag struct{}

var CarTagComponent = NewComponent[CarTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()
