package manager

// DefaultUpdateFrequency is the number of host ticks per simulation step.
const DefaultUpdateFrequency = 1

// TickScheduler throttles simulation steps relative to host ticks.
type TickScheduler struct {
	divisor   int
	countdown int
}

func NewTickScheduler(divisor int) *TickScheduler {
	if divisor < 1 {
		divisor = 1
	}
	return &TickScheduler{
		divisor:   divisor,
		countdown: divisor,
	}
}

// Due consumes one host tick and reports whether a step should run now.
func (ts *TickScheduler) Due() bool {
	ts.countdown--
	if ts.countdown > 0 {
		return false
	}
	ts.countdown = ts.divisor
	return true
}

// Countdown returns the host ticks left until the next step.
func (ts *TickScheduler) Countdown() int {
	return ts.countdown
}

func (ts *TickScheduler) Divisor() int {
	return ts.divisor
}
