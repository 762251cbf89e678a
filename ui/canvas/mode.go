package canvas

import (
	"errors"
	"fmt"
)

// Mode selects how the label is styled over the black fill.
type Mode string

const (
	ModeJapmic Mode = "japmic"
	ModeIPhone Mode = "iphone"
)

// ErrUnknownMode is returned by ParseMode for strings that name no Mode.
var ErrUnknownMode = errors.New("canvas: unknown background mode")

// ParseMode converts a flag value to a Mode.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeJapmic, ModeIPhone:
		return m, nil
	}
	return "", fmt.Errorf("%w: %q (want %q or %q)", ErrUnknownMode, s, ModeJapmic, ModeIPhone)
}

// Other returns the opposite of the two known modes.
func (m Mode) Other() Mode {
	if m == ModeJapmic {
		return ModeIPhone
	}
	return ModeJapmic
}
