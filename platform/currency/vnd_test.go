package currency

import "testing"

func TestFormatVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 0, want: "0\u00a0₫"},
		{amount: 999, want: "999\u00a0₫"},
		{amount: 1000, want: "1.000\u00a0₫"},
		{amount: 1234567, want: "1.234.567\u00a0₫"},
		{amount: -250000, want: "-250.000\u00a0₫"},
	}

	for _, tt := range tests {
		if got := FormatVND(tt.amount); got != tt.want {
			t.Fatalf("FormatVND(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatCompactVND(t *testing.T) {
	tests := []struct {
		amount int64
		want   string
	}{
		{amount: 500, want: "500\u00a0₫"},
		{amount: 1000, want: "1K"},
		{amount: 15400, want: "15K"},
		{amount: 14500, want: "15K"},
		{amount: 999499, want: "999K"},
		{amount: 1000000, want: "1.0M"},
		{amount: 2500000, want: "2.5M"},
		{amount: 12340000, want: "12.3M"},
		{amount: -5000, want: "-5.000\u00a0₫"},
	}

	for _, tt := range tests {
		if got := FormatCompactVND(tt.amount); got != tt.want {
			t.Fatalf("FormatCompactVND(%d) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestCode(t *testing.T) {
	if got := Code(); got != "VND" {
		t.Fatalf("expected VND, got %q", got)
	}
}
