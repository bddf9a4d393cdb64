package engine

// Params holds the tuning constants of the simulation.
// Units are tiles and seconds.
type Params struct {
	PlayerSpeed float64 // Horizontal speed while a direction key is held
	Gravity     float64 // Downward acceleration applied to the player
	JumpSpeed   float64 // Upward speed set when jumping off a surface
	WobbleSpeed float64 // Coin wobble phase rate (radians per second)
	WobbleDist  float64 // Coin wobble amplitude
	MaxStep     float64 // Upper bound for a single integration sub-step
	FinishDelay float64 // Time a won or lost level keeps running before it is finished
}

// DefaultParams returns the classic tuning.
func DefaultParams() Params {
	return Params{
		PlayerSpeed: 7,
		Gravity:     30,
		JumpSpeed:   17,
		WobbleSpeed: 8,
		WobbleDist:  0.07,
		MaxStep:     0.05,
		FinishDelay: 1,
	}
}

// Keys is the pressed-state snapshot the player reacts to.
type Keys struct {
	Left  bool
	Right bool
	Up    bool
}
