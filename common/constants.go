package common

const (
	BaseWidth  = 800
	BaseHeight = 600

	FrameRate = 60

	Gravity  = 9.81
	TimeStep = 0.016

	BodyCount = 8
	BodySize  = 30
)
