package montage

import "math"

// RationalTime is a time expressed as Value ticks at Rate ticks per second.
// The zero value is not meaningful; construct times with NewRationalTime or
// FromSeconds, or validate literals with Validate.
type RationalTime struct {
	Value float64
	Rate  float64
}

// NewRationalTime creates a RationalTime with the given value and rate.
// The rate must be positive.
func NewRationalTime(value, rate float64) (RationalTime, error) {
	t := RationalTime{Value: value, Rate: rate}
	if err := t.Validate(); err != nil {
		return RationalTime{}, err
	}
	return t, nil
}

// FromSeconds creates a RationalTime measuring the given number of seconds
// at the given rate.
func FromSeconds(seconds, rate float64) (RationalTime, error) {
	return NewRationalTime(seconds*rate, rate)
}

// Validate reports ErrInvalidRate when the rate is not positive.
func (t RationalTime) Validate() error {
	if !(t.Rate > 0) {
		return ErrInvalidRate
	}
	return nil
}

// Seconds converts this time to seconds.
func (t RationalTime) Seconds() float64 {
	return t.Value / t.Rate
}

// Rescaled returns this time expressed at a different rate. The result
// denotes the same instant; only the tick domain changes.
func (t RationalTime) Rescaled(rate float64) RationalTime {
	if rate == t.Rate {
		return t
	}
	return RationalTime{Value: t.Value * rate / t.Rate, Rate: rate}
}

// Add returns t + o. The result is expressed at t's rate; o is rescaled
// into t's tick domain before the values combine.
func (t RationalTime) Add(o RationalTime) RationalTime {
	return RationalTime{Value: t.Value + o.Rescaled(t.Rate).Value, Rate: t.Rate}
}

// Sub returns t - o at t's rate.
func (t RationalTime) Sub(o RationalTime) RationalTime {
	return RationalTime{Value: t.Value - o.Rescaled(t.Rate).Value, Rate: t.Rate}
}

// Neg returns the additive inverse of t.
func (t RationalTime) Neg() RationalTime {
	return RationalTime{Value: -t.Value, Rate: t.Rate}
}

// Cmp compares two times, rescaling o into t's tick domain first.
// It returns -1, 0, or 1.
func (t RationalTime) Cmp(o RationalTime) int {
	a, b := t.Value, o.Rescaled(t.Rate).Value
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// AlmostEqual reports whether two times denote the same instant within half
// a tick of t's rate. Useful when comparing across rates where rescaling
// introduces float error.
func (t RationalTime) AlmostEqual(o RationalTime) bool {
	return math.Abs(t.Value-o.Rescaled(t.Rate).Value) < 0.5
}

// TimeRange is a half-open interval [StartTime, StartTime+Duration).
// A zero or negative duration denotes an empty range.
type TimeRange struct {
	StartTime RationalTime
	Duration  RationalTime
}

// NewTimeRange creates a TimeRange from a start time and duration. Both
// rates must be positive.
func NewTimeRange(startTime, duration RationalTime) (TimeRange, error) {
	if err := startTime.Validate(); err != nil {
		return TimeRange{}, err
	}
	if err := duration.Validate(); err != nil {
		return TimeRange{}, err
	}
	return TimeRange{StartTime: startTime, Duration: duration}, nil
}

// Validate reports ErrInvalidRate when either component rate is not positive.
func (r TimeRange) Validate() error {
	if err := r.StartTime.Validate(); err != nil {
		return err
	}
	return r.Duration.Validate()
}

// EndTime returns the exclusive end of the range, at the start time's rate.
func (r TimeRange) EndTime() RationalTime {
	return r.StartTime.Add(r.Duration)
}

// Contains reports whether the instant t falls within [start, end).
func (r TimeRange) Contains(t RationalTime) bool {
	return t.Cmp(r.StartTime) >= 0 && t.Cmp(r.EndTime()) < 0
}

// Overlaps reports whether two half-open ranges share any instant. Empty
// ranges overlap nothing.
func (r TimeRange) Overlaps(o TimeRange) bool {
	if r.Duration.Value <= 0 || o.Duration.Value <= 0 {
		return false
	}
	return r.StartTime.Cmp(o.EndTime()) < 0 && o.StartTime.Cmp(r.EndTime()) < 0
}

// zeroTime returns a zero instant in the given tick domain.
func zeroTime(rate float64) RationalTime {
	return RationalTime{Value: 0, Rate: rate}
}
