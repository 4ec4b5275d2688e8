package runtime

import "testing"

func TestIsTruthy(t *testing.T) {
	cases := []struct {
		v    Value
		want bool
	}{
		{NilValue, false},
		{Bool(false), false},
		{Bool(true), true},
		{Number(0), true},
		{String(""), true},
	}
	for _, c := range cases {
		if got := IsTruthy(c.v); got != c.want {
			t.Errorf("IsTruthy(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}

func TestIsEqualAcrossDifferentTypesIsFalse(t *testing.T) {
	if IsEqual(Number(1), String("1")) {
		t.Error("values of different runtime types must never be equal")
	}
	if IsEqual(NilValue, Bool(false)) {
		t.Error("nil must equal only nil")
	}
}

func TestIsEqualByValue(t *testing.T) {
	if !IsEqual(Number(3), Number(3)) {
		t.Error("equal numbers should compare equal")
	}
	if !IsEqual(String("a"), String("a")) {
		t.Error("equal strings should compare equal")
	}
	if IsEqual(Number(3), Number(4)) {
		t.Error("unequal numbers should not compare equal")
	}
}

func TestNumberStringNoTrailingZero(t *testing.T) {
	if got := Number(3).String(); got != "3" {
		t.Errorf("got %q, want %q", got, "3")
	}
	if got := Number(3.5).String(); got != "3.5" {
		t.Errorf("got %q, want %q", got, "3.5")
	}
}

func TestStringifyNilValue(t *testing.T) {
	if got := Stringify(nil); got != "nil" {
		t.Errorf("got %q, want nil", got)
	}
	if got := Stringify(NilValue); got != "nil" {
		t.Errorf("got %q, want nil", got)
	}
}
