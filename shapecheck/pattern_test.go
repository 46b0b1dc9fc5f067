package shapecheck

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/pkg/errors"
)

var axisComparer = cmp.AllowUnexported(Axis{})

func TestNewPattern(t *testing.T) {
	tests := []struct {
		name    string
		specs   []any
		want    Pattern
		wantErr string
	}{
		{
			name:  "exact sizes",
			specs: []any{3, 4},
			want:  Pattern{Exact(3), Exact(4)},
		},
		{
			name:  "mixed",
			specs: []any{"batch", int64(3), -1},
			want:  Pattern{Named("batch"), Exact(3), Any()},
		},
		{
			name:  "unsigned and small integers",
			specs: []any{uint8(2), uint32(5), int16(7)},
			want:  Pattern{Exact(2), Exact(5), Exact(7)},
		},
		{
			name:  "axis values",
			specs: []any{Named("n"), Any(), Exact(0)},
			want:  Pattern{Named("n"), Any(), Exact(0)},
		},
		{
			name:  "scalar pattern",
			specs: []any{},
			want:  Pattern{},
		},
		{
			name:    "negative size",
			specs:   []any{3, -2},
			wantErr: "exact axis size must be >= 0 or -1, got -2",
		},
		{
			name:    "empty name",
			specs:   []any{""},
			wantErr: "axis name cannot be empty",
		},
		{
			name:    "numeral name",
			specs:   []any{"n", "4"},
			wantErr: `axis name "4" is numeric`,
		},
		{
			name:    "wildcard spelled as string",
			specs:   []any{"-1"},
			wantErr: `axis name "-1" is numeric`,
		},
		{
			name:    "unsupported type",
			specs:   []any{3.5},
			wantErr: "neither an integer nor a name",
		},
		{
			name:    "zero axis",
			specs:   []any{Axis{}},
			wantErr: "uninitialized axis specifier",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewPattern(tt.specs...)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				if !errors.Is(err, ErrMalformedPattern) {
					t.Fatalf("expected ErrMalformedPattern, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, axisComparer); diff != "" {
				t.Fatalf("unexpected pattern (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMustPatternPanics(t *testing.T) {
	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected MustPattern to panic")
		}
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrMalformedPattern) {
			t.Fatalf("expected ErrMalformedPattern panic, got %v", r)
		}
	}()
	MustPattern("n", -7)
}

func TestExactWildcard(t *testing.T) {
	if got := Exact(-1); got.Kind() != AxisWildcard {
		t.Fatalf("Exact(-1) kind = %v, want %v", got.Kind(), AxisWildcard)
	}
	if got := Exact(4); got.Kind() != AxisExact || got.Size() != 4 {
		t.Fatalf("Exact(4) = %v (%v)", got, got.Kind())
	}
	if got := Named("seq"); got.Kind() != AxisNamed || got.Name() != "seq" {
		t.Fatalf("Named(seq) = %v (%v)", got, got.Kind())
	}
}

func TestPatternString(t *testing.T) {
	tests := []struct {
		pattern Pattern
		want    string
	}{
		{Pattern{}, "()"},
		{MustPattern("n"), "(n,)"},
		{MustPattern("n", 3, -1), "(n, 3, -1)"},
	}

	for _, tt := range tests {
		if got := tt.pattern.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestPatternNames(t *testing.T) {
	got := MustPattern("b", 3, "s", "b", -1, "d").Names()
	want := []string{"b", "s", "d"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestParsePattern(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Pattern
		wantErr string
	}{
		{
			name: "standard",
			raw:  "batch,384",
			want: Pattern{Named("batch"), Exact(384)},
		},
		{
			name: "wildcards",
			raw:  " -1, _ ,* ",
			want: Pattern{Any(), Any(), Any()},
		},
		{
			name: "numerals are sizes",
			raw:  "n, 4",
			want: Pattern{Named("n"), Exact(4)},
		},
		{
			name: "tuple form",
			raw:  "(n, d1, -1)",
			want: Pattern{Named("n"), Named("d1"), Any()},
		},
		{
			name: "rank one tuple",
			raw:  "(seq,)",
			want: Pattern{Named("seq")},
		},
		{
			name: "scalar",
			raw:  "",
			want: Pattern{},
		},
		{
			name:    "empty dimension",
			raw:     "n,,d",
			wantErr: "empty dimension",
		},
		{
			name:    "negative dimension",
			raw:     "n,-3",
			wantErr: "negative dimension -3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePattern(tt.raw)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				if !errors.Is(err, ErrMalformedPattern) {
					t.Fatalf("expected ErrMalformedPattern, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, axisComparer); diff != "" {
				t.Fatalf("unexpected pattern (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParsePatternRoundTrip(t *testing.T) {
	for _, pattern := range []Pattern{{}, MustPattern("n"), MustPattern("batch", 3, -1)} {
		got, err := ParsePattern(pattern.String())
		if err != nil {
			t.Fatalf("ParsePattern(%q) failed: %v", pattern.String(), err)
		}
		if diff := cmp.Diff(pattern, got, axisComparer); diff != "" {
			t.Fatalf("round trip of %s mismatch (-want +got):\n%s", pattern, diff)
		}
	}
}

func TestToPattern(t *testing.T) {
	tests := []struct {
		name    string
		value   any
		want    Pattern
		wantErr string
	}{
		{
			name:  "pattern",
			value: MustPattern("n", 4),
			want:  Pattern{Named("n"), Exact(4)},
		},
		{
			name:  "axis slice",
			value: []Axis{Any(), Named("d")},
			want:  Pattern{Any(), Named("d")},
		},
		{
			name:  "int slice",
			value: []int{3, -1},
			want:  Pattern{Exact(3), Any()},
		},
		{
			name:  "int array",
			value: [2]int64{3, 4},
			want:  Pattern{Exact(3), Exact(4)},
		},
		{
			name:  "string slice",
			value: []string{"n", "d"},
			want:  Pattern{Named("n"), Named("d")},
		},
		{
			name:  "mixed any slice",
			value: []any{"n", 3},
			want:  Pattern{Named("n"), Exact(3)},
		},
		{
			name:  "shape",
			value: Shape{3, 4},
			want:  Pattern{Exact(3), Exact(4)},
		},
		{
			name:    "bare string",
			value:   "n",
			wantErr: "should be a sequence of axis specifiers, got string",
		},
		{
			name:    "integer",
			value:   3,
			wantErr: "cannot be converted to a sequence",
		},
		{
			name:    "nil",
			value:   nil,
			wantErr: "pattern is nil",
		},
		{
			name:    "invalid axis in pattern",
			value:   Pattern{Exact(-4)},
			wantErr: "exact axis size must be >= 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToPattern(tt.value)
			if tt.wantErr != "" {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.wantErr)
				}
				if !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %q", tt.wantErr, err.Error())
				}
				if !errors.Is(err, ErrMalformedPattern) {
					t.Fatalf("expected ErrMalformedPattern, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.want, got, axisComparer); diff != "" {
				t.Fatalf("unexpected pattern (-want +got):\n%s", diff)
			}
		})
	}
}
