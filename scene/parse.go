package scene

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/convex"
)

// ErrSyntax is returned for text that does not describe a half-plane.
var ErrSyntax = errors.New("scene: malformed half-plane")

// ParseHalfPlane parses "a b c", the half-plane a*x + b*y <= c. Fields may
// be separated by spaces, tabs or commas.
func ParseHalfPlane(s string) (convex.HalfPlane, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) != 3 {
		return convex.HalfPlane{}, fmt.Errorf("%w: want 3 numbers, got %d in %q", ErrSyntax, len(fields), s)
	}

	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return convex.HalfPlane{}, fmt.Errorf("%w: %w", ErrSyntax, err)
		}
		v[i] = n
	}
	return convex.NewHalfPlane(v[0], v[1], v[2])
}

// ReadHalfPlanes reads one half-plane per line. Blank lines and text after
// '#' are ignored. Errors name the offending line.
func ReadHalfPlanes(r io.Reader) ([]convex.HalfPlane, error) {
	var hs []convex.HalfPlane
	sc := bufio.NewScanner(r)
	for line := 1; sc.Scan(); line++ {
		text := sc.Text()
		if i := strings.IndexByte(text, '#'); i >= 0 {
			text = text[:i]
		}
		if strings.TrimSpace(text) == "" {
			continue
		}
		h, err := ParseHalfPlane(text)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		hs = append(hs, h)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("scene: read half-planes: %w", err)
	}
	return hs, nil
}
