package shipment

import (
	"fmt"
	"strings"

	"logistics/internal/pkg/errs"
)

// Direction is the movement direction of a stock document.
type Direction int

const (
	// Unknown catches uninitialized values.
	Unknown Direction = iota
	Incoming
	Outgoing
	Internal
)

func getDirectionStrings() map[Direction]string {
	return map[Direction]string{
		Unknown:  "unknown",
		Incoming: "incoming",
		Outgoing: "outgoing",
		Internal: "internal",
	}
}

// ParseDirection maps the host's picking type code to a Direction.
func ParseDirection(s string) (Direction, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for d, str := range getDirectionStrings() {
		if d != Unknown && str == normalized {
			return d, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"direction is invalid",
		fmt.Errorf("%q is not one of incoming, outgoing, internal", s),
	)
}

func (d Direction) Validate() error {
	if d != Incoming && d != Outgoing && d != Internal {
		return errs.NewValueIsInvalidErrorWithCause("direction is invalid", fmt.Errorf("%d is not a valid direction", d))
	}
	return nil
}

func (d Direction) String() string {
	if str, ok := getDirectionStrings()[d]; ok {
		return str
	}
	return "unknown"
}
