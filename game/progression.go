package game

import "time"

// Progress is the scoring state of a session.
type Progress struct {
	Score     int
	HighScore int
	Level     int
	Speed     int
	Lines     int
}

// ClearScore is the award for clearing k rows at once: unit for the first row,
// 2·unit for the second and so on, i.e. unit·k(k+1)/2.
func ClearScore(unit, k int) int {
	if k <= 0 {
		return 0
	}
	return unit * k * (k + 1) / 2
}

// LevelFor returns the level reached at score. Levels start at 1.
func LevelFor(score, threshold int) int {
	return score/threshold + 1
}

// SpeedFor returns the speed for level, capped at max when max is positive.
func SpeedFor(level, threshold, max int) int {
	speed := level/threshold + 1
	if max > 0 && speed > max {
		speed = max
	}
	return speed
}

// DropInterval returns the gravity period at speed: base shrinks by step·base
// per speed above 1 and never goes below floor.
func DropInterval(base time.Duration, step float64, speed int, floor time.Duration) time.Duration {
	if speed < 1 {
		speed = 1
	}
	interval := base - time.Duration(float64(base)*step*float64(speed-1))
	if interval < floor {
		interval = floor
	}
	return interval
}
