package interp

import "testing"

func TestStringifyNilIsNil(t *testing.T) {
	if got := Stringify(nil); got != "nil" {
		t.Fatalf("got %q", got)
	}
}

func TestStringifyBooleansAreLowercase(t *testing.T) {
	if got := Stringify(true); got != "true" {
		t.Fatalf("got %q, want \"true\"", got)
	}
	if got := Stringify(false); got != "false" {
		t.Fatalf("got %q, want \"false\"", got)
	}
}

func TestStringifyNumberDropsTrailingZeroes(t *testing.T) {
	cases := map[float64]string{
		3:   "3",
		1.5: "1.5",
		0:   "0",
		-2:  "-2",
	}
	for in, want := range cases {
		if got := Stringify(in); got != want {
			t.Fatalf("Stringify(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    interface{}
		want bool
	}{
		{nil, false},
		{false, false},
		{true, true},
		{0.0, true},
		{"", true},
		{"x", true},
	}
	for _, c := range cases {
		if got := isTruthy(c.v); got != c.want {
			t.Fatalf("isTruthy(%#v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsEqualAcrossVariantsIsNeverEqual(t *testing.T) {
	if isEqual(1.0, "1") {
		t.Fatalf("expected a number and a string to never be equal")
	}
	if isEqual(nil, false) {
		t.Fatalf("expected nil and false to never be equal")
	}
}

func TestIsEqualNilOnlyEqualsNil(t *testing.T) {
	if !isEqual(nil, nil) {
		t.Fatalf("expected nil == nil")
	}
}
