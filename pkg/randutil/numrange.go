package randutil

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"regexp"
	"strconv"
)

// Status describes the well-formedness of a Range.
type Status int

const (
	StatusOK Status = iota + 1
	StatusLeftMissing
	StatusRightMissing
	StatusBothMissing
	StatusInvalid // left bound greater than right bound
)

// ErrEmptyRange is returned when a random value is requested from a range
// that contains no eligible values.
var ErrEmptyRange = errors.New("randutil: range contains no eligible values")

// Bound is one end of a Range.
type Bound struct {
	Defined bool
	Value   float64
	Closed  bool
}

// Range is a numeric interval with independently open or closed ends and
// optional base alignment for integer selection.
type Range struct {
	Left  Bound
	Right Bound
	// Base, when non-zero, restricts RandomInt to multiples of Base.
	Base int
}

// NewRange builds a range with both bounds defined.
func NewRange(left, right float64, leftClosed, rightClosed bool) *Range {
	return &Range{
		Left:  Bound{Defined: true, Value: left, Closed: leftClosed},
		Right: Bound{Defined: true, Value: right, Closed: rightClosed},
	}
}

var rangePattern = regexp.MustCompile(`^\s*([\[(])\s*(-?\d+(?:\.\d+)?)?\s*,?\s*(-?\d+(?:\.\d+)?)?\s*([\])])\s*$`)

// ParseRange parses interval notation such as "[0, 10]", "(0.5, 10)" or
// "[0, 10)". Missing bound values are allowed and surface through Status.
func ParseRange(s string) (*Range, error) {
	m := rangePattern.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("randutil: invalid range syntax %q", s)
	}
	r := &Range{
		Left:  Bound{Closed: m[1] == "["},
		Right: Bound{Closed: m[4] == "]"},
	}
	if m[2] != "" {
		v, err := strconv.ParseFloat(m[2], 64)
		if err != nil {
			return nil, fmt.Errorf("randutil: invalid left bound %q: %w", m[2], err)
		}
		r.Left.Defined = true
		r.Left.Value = v
	}
	if m[3] != "" {
		v, err := strconv.ParseFloat(m[3], 64)
		if err != nil {
			return nil, fmt.Errorf("randutil: invalid right bound %q: %w", m[3], err)
		}
		r.Right.Defined = true
		r.Right.Value = v
	}
	return r, nil
}

// Status reports whether the range is usable.
func (r *Range) Status() Status {
	switch {
	case !r.Left.Defined && !r.Right.Defined:
		return StatusBothMissing
	case !r.Left.Defined:
		return StatusLeftMissing
	case !r.Right.Defined:
		return StatusRightMissing
	case r.Left.Value > r.Right.Value:
		return StatusInvalid
	}
	return StatusOK
}

// Valid reports whether both bounds are defined and ordered.
func (r *Range) Valid() bool {
	return r.Status() == StatusOK
}

func (r *Range) String() string {
	pre, suf := "(", ")"
	if r.Left.Closed {
		pre = "["
	}
	if r.Right.Closed {
		suf = "]"
	}
	out := fmt.Sprintf("%s%v, %v%s", pre, r.Left.Value, r.Right.Value, suf)
	if r.Base != 0 {
		out += fmt.Sprintf("{%d}", r.Base)
	}
	return out
}

// Contains reports whether v lies inside the range.
func (r *Range) Contains(v float64) bool {
	if !r.Valid() {
		return false
	}
	if v < r.Left.Value || (v == r.Left.Value && !r.Left.Closed) {
		return false
	}
	if v > r.Right.Value || (v == r.Right.Value && !r.Right.Closed) {
		return false
	}
	return true
}

// ContainsRange reports whether other lies entirely inside the range.
func (r *Range) ContainsRange(other *Range) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	leftOK := r.Left.Value < other.Left.Value ||
		(r.Left.Value == other.Left.Value && (r.Left.Closed || !other.Left.Closed))
	rightOK := r.Right.Value > other.Right.Value ||
		(r.Right.Value == other.Right.Value && (r.Right.Closed || !other.Right.Closed))
	return leftOK && rightOK
}

// intWindow returns the half-open integer window [lo, hi) covered by the
// range, treating bound values as integers.
func (r *Range) intWindow() (int, int, error) {
	if !r.Valid() {
		return 0, 0, fmt.Errorf("randutil: range %s is not valid", r)
	}
	lo := int(r.Left.Value)
	if !r.Left.Closed {
		lo++
	}
	hi := int(r.Right.Value)
	if r.Right.Closed {
		hi++
	}
	return lo, hi, nil
}

// RandomInt returns a random integer from the range, advancing from the
// left bound in increments of step (step values below 1 mean 1). When Base
// is set, multiples of Base are selected instead.
func (r *Range) RandomInt(step int) (int, error) {
	if r.Base != 0 {
		return r.randomIntBase()
	}
	if step < 1 {
		step = 1
	}
	lo, hi, err := r.intWindow()
	if err != nil {
		return 0, err
	}
	if lo >= hi {
		return 0, ErrEmptyRange
	}
	count := (hi - lo + step - 1) / step
	return lo + step*rand.IntN(count), nil
}

func (r *Range) randomIntBase() (int, error) {
	base := r.Base
	if base < 0 {
		base = -base
	}
	lo, hi, err := r.intWindow()
	if err != nil {
		return 0, err
	}
	// align lo up to the next multiple of base
	rem := ((lo % base) + base) % base
	if rem != 0 {
		lo += base - rem
	}
	if lo >= hi {
		return 0, ErrEmptyRange
	}
	count := (hi - lo + base - 1) / base
	return lo + base*rand.IntN(count), nil
}

// RandomFloat returns a triangularly distributed value with the mode at the
// midpoint of the range.
func (r *Range) RandomFloat() (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("randutil: range %s is not valid", r)
	}
	return r.RandomFloatAround((r.Left.Value + r.Right.Value) / 2)
}

// RandomFloatAround returns a triangularly distributed value with the given
// mode. The mode is clamped to the range.
func (r *Range) RandomFloatAround(mode float64) (float64, error) {
	if !r.Valid() {
		return 0, fmt.Errorf("randutil: range %s is not valid", r)
	}
	a, b := r.Left.Value, r.Right.Value
	if a == b {
		return a, nil
	}
	mode = math.Max(a, math.Min(b, mode))
	u := rand.Float64()
	c := (mode - a) / (b - a)
	if u < c {
		return a + math.Sqrt(u*(b-a)*(mode-a)), nil
	}
	return b - math.Sqrt((1-u)*(b-a)*(b-mode)), nil
}
