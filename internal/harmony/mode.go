package harmony

import (
	"errors"
	"fmt"
)

// ErrInvalidMode is returned when a mode outside the fixed set is requested.
var ErrInvalidMode = errors.New("invalid mode specified")

// Mode defines the relationship between the colors on the wheel.
type Mode string

const (
	Custom        Mode = "custom"
	Analogous     Mode = "analogous"
	Complementary Mode = "complementary"
	Triad         Mode = "triad"
	Tetrad        Mode = "tetrad"
	Monochromatic Mode = "monochromatic"
	Shades        Mode = "shades"
)

var modes = []Mode{Custom, Analogous, Complementary, Triad, Tetrad, Monochromatic, Shades}

// Modes returns every recognized mode, in display order.
func Modes() []Mode {
	return append([]Mode(nil), modes...)
}

// Validate returns an error wrapping ErrInvalidMode if m is not recognized.
func (m Mode) Validate() error {
	for _, known := range modes {
		if m == known {
			return nil
		}
	}
	return fmt.Errorf("%w: %q", ErrInvalidMode, string(m))
}

// ParseMode converts a string into a validated Mode.
func ParseMode(s string) (Mode, error) {
	m := Mode(s)
	if err := m.Validate(); err != nil {
		return "", err
	}
	return m, nil
}

func (m Mode) String() string { return string(m) }

// Next returns the mode following m in display order, wrapping around.
func (m Mode) Next() Mode {
	for i, known := range modes {
		if known == m {
			return modes[(i+1)%len(modes)]
		}
	}
	return modes[0]
}
