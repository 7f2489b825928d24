package tabbar

import (
	"fmt"
	"strconv"
	"strings"
)

type lengthKind int

const (
	lengthShrink lengthKind = iota
	lengthFill
	lengthFixed
	lengthPortion
)

// Length is a sizing rule along one axis, measured in cells.
type Length struct {
	kind lengthKind
	n    int
}

var (
	// Shrink sizes to the content's natural size.
	Shrink = Length{kind: lengthShrink}
	// Fill takes all the space the parent offers.
	Fill = Length{kind: lengthFill}
)

// Fixed is an exact number of cells. Negative values are treated as 0.
func Fixed(cells int) Length {
	return Length{kind: lengthFixed, n: max(cells, 0)}
}

// FillPortion fills like Fill, weighted against siblings. A portion below 1
// is treated as 1.
func FillPortion(portion int) Length {
	return Length{kind: lengthPortion, n: max(portion, 1)}
}

// IsShrink reports whether l sizes to content.
func (l Length) IsShrink() bool { return l.kind == lengthShrink }

// IsFill reports whether l is Fill or FillPortion.
func (l Length) IsFill() bool { return l.kind == lengthFill || l.kind == lengthPortion }

// Cells returns the fixed size and true for a Fixed length.
func (l Length) Cells() (int, bool) {
	return l.n, l.kind == lengthFixed
}

// Portion returns the fill weight: 1 for Fill, n for FillPortion(n), 0
// otherwise.
func (l Length) Portion() int {
	switch l.kind {
	case lengthFill:
		return 1
	case lengthPortion:
		return l.n
	default:
		return 0
	}
}

func (l Length) String() string {
	switch l.kind {
	case lengthFill:
		return "fill"
	case lengthFixed:
		return fmt.Sprintf("fixed(%d)", l.n)
	case lengthPortion:
		return fmt.Sprintf("fill-portion(%d)", l.n)
	default:
		return "shrink"
	}
}

// ParseLength reads the config spelling of a length: "shrink", "fill",
// "fill-portion(n)", "fixed(n)" or a bare cell count. The whole input must
// match; negative counts and portions below 1 are rejected.
func ParseLength(s string) (Length, error) {
	switch s {
	case "", "shrink":
		return Shrink, nil
	case "fill":
		return Fill, nil
	}
	if arg, ok := cutCall(s, "fill-portion"); ok {
		n, err := strconv.Atoi(arg)
		if err != nil || n < 1 {
			return Shrink, fmt.Errorf("invalid length %q: portion must be a positive integer", s)
		}
		return FillPortion(n), nil
	}
	arg := s
	if inner, ok := cutCall(s, "fixed"); ok {
		arg = inner
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 || strings.HasPrefix(arg, "+") {
		return Shrink, fmt.Errorf("invalid length %q", s)
	}
	return Fixed(n), nil
}

// cutCall returns the argument of name(arg).
func cutCall(s, name string) (string, bool) {
	rest, ok := strings.CutPrefix(s, name+"(")
	if !ok {
		return "", false
	}
	return strings.CutSuffix(rest, ")")
}
