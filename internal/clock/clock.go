package clock

import "time"

// Clock supplies the current instant used for temporal classification.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func System() Clock { return systemClock{} }

func (systemClock) Now() time.Time { return time.Now().UTC() }

// Fixed always returns the same instant. Used by tests and the seed command.
type Fixed time.Time

func (f Fixed) Now() time.Time { return time.Time(f).UTC() }
