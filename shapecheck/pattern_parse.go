package shapecheck

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ParseShape parses a comma-separated shape string (for example: "1,384").
// Surrounding parentheses are allowed, so Shape.String output parses back.
// A scalar shape must be spelled "()"; empty input is rejected.
func ParseShape(raw string) (Shape, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errors.New("empty dimension")
	}
	parts, err := splitTuple(raw)
	if err != nil {
		return nil, err
	}

	shape := make(Shape, 0, len(parts))
	for _, part := range parts {
		dim, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse dimension %q", part)
		}
		if dim < 0 {
			return nil, errors.Errorf("negative dimension %d", dim)
		}
		shape = append(shape, dim)
	}

	return shape, nil
}

// ParsePattern parses a comma-separated pattern string such as "batch, 3, -1".
//
// Integer tokens are exact sizes, "-1", "_" and "*" are wildcards and every
// other token is a symbolic name. Surrounding parentheses are allowed.
func ParsePattern(raw string) (Pattern, error) {
	parts, err := splitTuple(raw)
	if err != nil {
		e := errorf(ErrMalformedPattern, "pattern %q: %v", raw, err)
		return nil, e
	}

	pattern := make(Pattern, 0, len(parts))
	for i, part := range parts {
		switch part {
		case "_", "*":
			pattern = append(pattern, Any())
			continue
		}

		if size, err := strconv.ParseInt(part, 10, 64); err == nil {
			if size < WildcardSize {
				e := errorf(ErrMalformedPattern, "pattern %q axis %d: negative dimension %d", raw, i, size)
				e.Axis = i
				return nil, e
			}
			pattern = append(pattern, Exact(size))
			continue
		}

		pattern = append(pattern, Named(part))
	}

	return validated(pattern)
}

// splitTuple splits "a, b" or "(a, b)" into trimmed, non-empty tokens.
// A single trailing comma is accepted inside parentheses, as in "(3,)".
func splitTuple(raw string) ([]string, error) {
	raw = strings.TrimSpace(raw)
	parenthesized := strings.HasPrefix(raw, "(") && strings.HasSuffix(raw, ")")
	if parenthesized {
		raw = strings.TrimSpace(raw[1 : len(raw)-1])
	}
	if raw == "" {
		return []string{}, nil
	}

	parts := strings.Split(raw, ",")
	if parenthesized && len(parts) > 1 && strings.TrimSpace(parts[len(parts)-1]) == "" {
		parts = parts[:len(parts)-1]
	}
	for i, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			return nil, errors.New("empty dimension")
		}
		parts[i] = part
	}
	return parts, nil
}
