package shapecheck

import (
	"maps"
	"slices"
	"strconv"
	"strings"
)

// Bindings maps symbolic axis names to the size they were first matched
// against. Entries are added by validation but never changed or removed.
//
// A Bindings value passed into a check is extended in place; it must not be
// used by concurrent checks without external synchronization.
type Bindings map[string]int64

// Lookup returns the size bound to name.
func (b Bindings) Lookup(name string) (int64, bool) {
	size, ok := b[name]
	return size, ok
}

// Clone returns an independent copy of b.
func (b Bindings) Clone() Bindings {
	if b == nil {
		return nil
	}
	return maps.Clone(b)
}

// Names returns the bound names in sorted order.
func (b Bindings) Names() []string {
	return slices.Sorted(maps.Keys(b))
}

// String renders b with sorted names, for example "{d: 4, n: 3}".
func (b Bindings) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, name := range b.Names() {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(name)
		sb.WriteString(": ")
		sb.WriteString(strconv.FormatInt(b[name], 10))
	}
	sb.WriteByte('}')
	return sb.String()
}

// bind records size for name unless name is already bound. It reports the
// size bound to name and whether it equals size.
func (b Bindings) bind(name string, size int64) (int64, bool) {
	if bound, ok := b[name]; ok {
		return bound, bound == size
	}
	b[name] = size
	return size, true
}
