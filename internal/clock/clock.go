package clock

import (
	"errors"
	"fmt"
	"strconv"
)

var ErrInvalidFormat = errors.New("invalid time format")

// Time is a time of day at minute resolution, counted in minutes since midnight.
type Time int

// Parse accepts exactly HH:MM on a 24-hour clock.
func Parse(s string) (Time, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q, expected HH:MM", ErrInvalidFormat, s)
	}
	h, err := twoDigits(s[0:2])
	if err != nil || h > 23 {
		return 0, fmt.Errorf("%w: invalid hour in %q", ErrInvalidFormat, s)
	}
	m, err := twoDigits(s[3:5])
	if err != nil || m > 59 {
		return 0, fmt.Errorf("%w: invalid minute in %q", ErrInvalidFormat, s)
	}
	return Time(h*60 + m), nil
}

func MustParse(s string) Time {
	t, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return t
}

func twoDigits(s string) (int, error) {
	// strconv.Atoi alone would let "+7" through
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' {
		return 0, ErrInvalidFormat
	}
	return strconv.Atoi(s)
}

func (t Time) Hour() int   { return int(t) / 60 }
func (t Time) Minute() int { return int(t) % 60 }

func (t Time) Before(u Time) bool { return t < u }
func (t Time) After(u Time) bool  { return t > u }

func (t Time) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
