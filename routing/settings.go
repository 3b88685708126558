package routing

import (
	"errors"
	"fmt"
)

// ErrInvalidSettings is returned when the wait time is negative or the
// velocity is not positive.
var ErrInvalidSettings = errors.New("invalid routing settings")

// Settings controls edge weights. Times are in minutes.
type Settings struct {
	// BusWaitTime is paid once per boarding
	BusWaitTime int
	// BusVelocity is in meters per minute
	BusVelocity float64
}

// KmhToMetersPerMinute converts a bus velocity in km/h
func KmhToMetersPerMinute(kmh float64) float64 {
	return kmh * 1000 / 60
}

// Validate checks that the settings can produce finite non-negative weights
func (s Settings) Validate() error {
	if s.BusWaitTime < 0 {
		return fmt.Errorf("%w: bus wait time %d", ErrInvalidSettings, s.BusWaitTime)
	}
	if !(s.BusVelocity > 0) {
		return fmt.Errorf("%w: bus velocity %v", ErrInvalidSettings, s.BusVelocity)
	}
	return nil
}

func (s Settings) wait() float64 { return float64(s.BusWaitTime) }
