package shapes

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jakecoffman/cp"
)

// ParsePoint reads "x,y" as well as the "{ x,y }" form PhysicsEditor writes
// for cocos2d-x.
func ParsePoint(s string) (cp.Vector, error) {
	body := strings.TrimSpace(s)
	if inner, ok := strings.CutPrefix(body, "{"); ok {
		inner, ok = strings.CutSuffix(inner, "}")
		if !ok {
			return cp.Vector{}, fmt.Errorf("%w: point %q: unbalanced braces", ErrInvalidField, s)
		}
		body = inner
	} else if strings.HasSuffix(body, "}") {
		return cp.Vector{}, fmt.Errorf("%w: point %q: unbalanced braces", ErrInvalidField, s)
	}

	xs, ys, ok := strings.Cut(body, ",")
	if !ok {
		return cp.Vector{}, fmt.Errorf("%w: point %q", ErrInvalidField, s)
	}
	x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("%w: point %q: %v", ErrInvalidField, s, err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
	if err != nil {
		return cp.Vector{}, fmt.Errorf("%w: point %q: %v", ErrInvalidField, s, err)
	}
	return cp.Vector{X: x, Y: y}, nil
}
