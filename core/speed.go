package core

import "time"

// Speed level bounds, clamped rather than wrapped
const (
	MinSpeedLevel = 1
	MaxSpeedLevel = 10
)

// speedDurations maps speed level 1..10 to the tick period. The same value
// is the input poll timeout: input responsiveness is intentionally coupled
// to animation speed since keys are only checked between frames.
var speedDurations = [MaxSpeedLevel]time.Duration{
	100 * time.Millisecond,
	88 * time.Millisecond,
	76 * time.Millisecond,
	64 * time.Millisecond,
	52 * time.Millisecond,
	40 * time.Millisecond,
	33 * time.Millisecond,
	28 * time.Millisecond,
	24 * time.Millisecond,
	20 * time.Millisecond,
}

// SpeedDuration returns the tick period for a speed level in
// [MinSpeedLevel, MaxSpeedLevel]. Out-of-range levels are a programmer
// error, all callers hold a clamped Config.
func SpeedDuration(level int) time.Duration {
	return speedDurations[level-MinSpeedLevel]
}
