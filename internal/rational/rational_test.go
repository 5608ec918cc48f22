package rational

import (
	"math/big"
	"testing"
)

func TestNew_Reduces(t *testing.T) {
	tests := []struct {
		name   string
		n, d   int64
		wantS  string
		wantN  int64
		wantD  int64
	}{
		{"already reduced", 1, 5, "0.2", 1, 5},
		{"reduces 2/4", 2, 4, "0.5", 1, 2},
		{"negative denominator flips sign", 1, -5, "-0.2", -1, 5},
		{"both negative cancel", -3, -9, "0.3333333333333333", 1, 3},
		{"integer stays exact", 10, 2, "5", 5, 1},
		{"zero numerator canonicalizes to 0/1", 0, 7, "0", 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(tt.n, tt.d)
			if r.n.Int64() != tt.wantN || r.d.Int64() != tt.wantD {
				t.Fatalf("New(%d,%d) = %s/%s, want %d/%d", tt.n, tt.d, r.n, r.d, tt.wantN, tt.wantD)
			}
			if got := r.String(); got != tt.wantS {
				t.Errorf("New(%d,%d).String() = %q, want %q", tt.n, tt.d, got, tt.wantS)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		name string
		r    Rational
		want string
	}{
		{"zero", Zero, "0"},
		{"one", One, "1"},
		{"integer", FromInt(32), "32"},
		{"negative integer", FromInt(-1), "-1"},
		{"one fifth", New(1, 5), "0.2"},
		{"one third shortest round-trip", New(1, 3), "0.3333333333333333"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.r.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	a := New(1, 2)
	b := New(1, 3)

	if got := Add(a, b); got.String() != "0.8333333333333334" {
		t.Errorf("Add(1/2, 1/3) = %s", got)
	}
	if got := Sub(a, b); !Eq(got, New(1, 6)) {
		t.Errorf("Sub(1/2, 1/3) = %s, want 1/6", got)
	}
	if got := Mul(a, b); !Eq(got, New(1, 6)) {
		t.Errorf("Mul(1/2, 1/3) = %s, want 1/6", got)
	}
	if got := Div(a, b); !Eq(got, New(3, 2)) {
		t.Errorf("Div(1/2, 1/3) = %s, want 3/2", got)
	}
}

func TestMod_TruncatedQuotient(t *testing.T) {
	// Mod is computed via truncated-quotient division on the
	// cross-multiplied numerators, not floored division, so negative
	// operands behave like Go's %, not Python's.
	tests := []struct {
		name string
		a, b Rational
		want Rational
	}{
		{"positive", FromInt(7), FromInt(3), FromInt(1)},
		{"negative dividend truncates toward zero", FromInt(-7), FromInt(3), FromInt(-1)},
		{"negative divisor", FromInt(7), FromInt(-3), FromInt(1)},
		{"both negative", FromInt(-7), FromInt(-3), FromInt(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Mod(tt.a, tt.b)
			if !Eq(got, tt.want) {
				t.Errorf("Mod(%s, %s) = %s, want %s", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	a := New(1, 2)
	b := New(2, 3)
	if !Lt(a, b) || Gt(a, b) || Eq(a, b) {
		t.Fatalf("expected 1/2 < 2/3")
	}
	if !Le(a, a) || !Ge(a, a) || !Eq(a, a) {
		t.Fatalf("expected 1/2 == 1/2")
	}
	if !Ne(a, b) {
		t.Fatalf("expected 1/2 != 2/3")
	}
}

func TestToIntTruncatesTowardZero(t *testing.T) {
	if got := New(7, 2).ToInt(); got != 3 {
		t.Errorf("ToInt(7/2) = %d, want 3", got)
	}
	if got := New(-7, 2).ToInt(); got != -3 {
		t.Errorf("ToInt(-7/2) = %d, want -3", got)
	}
}

func TestToBool(t *testing.T) {
	if Zero.ToBool() {
		t.Error("Zero should be falsy")
	}
	if !One.ToBool() {
		t.Error("One should be truthy")
	}
	if !FromInt(-1).ToBool() {
		t.Error("-1 should be truthy")
	}
}

func TestFromBigInt(t *testing.T) {
	big100 := new(big.Int).SetInt64(100)
	r := FromBigInt(big100)
	if r.String() != "100" {
		t.Errorf("FromBigInt(100) = %s, want 100", r)
	}
}

func TestIsZeroDenominator(t *testing.T) {
	if !Zero.IsZeroDenominator() {
		t.Error("Zero numerator should report IsZeroDenominator true")
	}
	if One.IsZeroDenominator() {
		t.Error("One numerator should report IsZeroDenominator false")
	}
}
