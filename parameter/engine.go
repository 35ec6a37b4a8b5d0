package parameter

import "time"

// Frame loop
const (
	// FrameRate is the default target refresh rate
	FrameRate = 60

	// MaxFrameDelta caps dt after a stall so integrators do not jump
	MaxFrameDelta = 100 * time.Millisecond

	// FrameBehindLimit is how many intervals the loop may lag before resyncing its deadline
	FrameBehindLimit = 2

	// EventBufferSize bounds the input channel between the poll goroutine and the loop
	EventBufferSize = 100
)
