package analytics

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestMoney_String(t *testing.T) {
	tests := []struct {
		value    string
		currency string
		want     string
	}{
		{"179.15", "EUR", "179.15"},
		{"-12.345", "USD", "12.35"},
		{"0.4", "JPY", "0"},
	}
	for _, tt := range tests {
		m := M(decimal.RequireFromString(tt.value), tt.currency)
		if got := m.String(); !strings.Contains(got, tt.want) {
			t.Errorf("M(%s, %s).String() = %q, want the amount %q", tt.value, tt.currency, got, tt.want)
		}
	}
}

func TestMoney_AddNeg(t *testing.T) {
	paid := M(decimal.RequireFromString("-1702.25"), "EUR").Add(M(decimal.RequireFromString("523.10"), "EUR"))
	if got, want := paid.Neg().String(), M(decimal.RequireFromString("1179.15"), "EUR").String(); got != want {
		t.Errorf("Neg() = %q, want %q", got, want)
	}
	defer func() {
		if recover() == nil {
			t.Error("Add() of different currencies did not panic")
		}
	}()
	M(decimal.Zero, "EUR").Add(M(decimal.Zero, "USD"))
}

func TestPercent(t *testing.T) {
	if got := Ratio(-0.25).String(); got != "-25.00%" {
		t.Errorf("Ratio(-0.25) = %q, want -25.00%%", got)
	}
	if got := Percent(0).SignedString(); got != "-" {
		t.Errorf("SignedString() = %q, want -", got)
	}
	if got := Percent(3.5).SignedString(); got != "+3.50%" {
		t.Errorf("SignedString() = %q, want +3.50%%", got)
	}
}
