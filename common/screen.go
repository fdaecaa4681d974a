package common

// Fallback window size before the first layout pass reports the real one.
const (
	BaseWidth  = 1280
	BaseHeight = 720
)
