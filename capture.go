package cargs

import "fmt"

type captureKind uint8

const (
	captureUnset captureKind = iota
	captureSwitch
	captureNext
	captureGroup
)

// Capture describes how a matched token yields its value. The zero value is
// unset and resolved at registration time, see inference rules on Option.
type Capture struct {
	kind  captureKind
	group int
}

var (
	// Switch records true for bare presence of a matching token.
	Switch = Capture{kind: captureSwitch}
	// NextToken consumes the token following the matching one as the value.
	NextToken = Capture{kind: captureNext}
)

// Group captures the submatch of the matching token itself at the provided
// capture group index, group 0 is the whole token.
func Group(n int) Capture {
	return Capture{kind: captureGroup, group: n}
}

func (c Capture) String() string {
	switch c.kind {
	case captureSwitch:
		return "switch"
	case captureNext:
		return "next"
	case captureGroup:
		return fmt.Sprintf("group(%d)", c.group)
	default:
		return "unset"
	}
}
