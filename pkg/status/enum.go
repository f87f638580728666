package status

import (
	"errors"
	"fmt"
)

// ErrUnknownName is returned when text does not name a variant.
var ErrUnknownName = errors.New("unknown name")

type enum interface {
	~uint8 | ~uint16
	String() string
}

// parseText sets dst to the variant below count whose name equals text.
// Names are matched exactly.
func parseText[T enum](dst *T, kind string, text []byte, count T) error {
	s := string(text)
	for v := T(0); v < count; v++ {
		if v.String() == s {
			*dst = v
			return nil
		}
	}
	return fmt.Errorf("%w: %s %q", ErrUnknownName, kind, s)
}
