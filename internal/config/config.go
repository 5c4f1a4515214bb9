package config

const (
	WindowWidth  = 480
	WindowHeight = 480
	WindowTitle  = "Fluid Bubble - D or button: toggle direction, Esc/Q: quit"

	TicksPerSecond = 60

	// Bubble bounds, centred in the window
	BubbleSize = 300

	// Button dimensions, anchored to the bottom centre
	ButtonWidth        = 200
	ButtonHeight       = 44
	ButtonBottomMargin = 30

	// Wave parameters
	BaseRadius         = 100
	Samples            = 120
	PrimaryFrequency   = 2
	SecondaryFrequency = 3
	PrimaryAmplitude   = 5
	SecondaryAmplitude = 3
	PrimaryIncrement   = 0.02
	SecondaryIncrement = 0.026
	AnimationSpeed     = 1.5

	// Chime
	ChimeSampleRate = 44100
	ChimeVolume     = 0.2
	FrameHistory    = 120
)
