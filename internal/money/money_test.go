package money

import "testing"

func TestFromFloat(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want Money
	}{
		{"whole units", 90.0, 9000},
		{"two decimals", 12.34, 1234},
		{"rounds half up", 0.005, 1},
		{"rounds half away from zero when negative", -0.005, -1},
		{"truncates binary noise", 0.1 + 0.2, 30},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromFloat(tt.in); got != tt.want {
				t.Errorf("FromFloat(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitEven(t *testing.T) {
	tests := []struct {
		name  string
		total Money
		n     int
		want  []Money
	}{
		{"exact division", 9000, 3, []Money{3000, 3000, 3000}},
		{"remainder to earliest shares", 10000, 3, []Money{3334, 3333, 3333}},
		{"two units of remainder", 101, 3, []Money{34, 34, 33}},
		{"single participant gets everything", 4000, 1, []Money{4000}},
		{"zero amount", 0, 4, []Money{0, 0, 0, 0}},
		{"negative amount", -100, 3, []Money{-34, -33, -33}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.total.SplitEven(tt.n)
			if len(got) != len(tt.want) {
				t.Fatalf("SplitEven(%d) returned %d shares, want %d", tt.n, len(got), len(tt.want))
			}
			var sum Money
			for i, share := range got {
				if share != tt.want[i] {
					t.Errorf("share[%d] = %d, want %d", i, share, tt.want[i])
				}
				sum += share
			}
			if sum != tt.total {
				t.Errorf("shares sum to %d, want %d", sum, tt.total)
			}
		})
	}
}

func TestSplitEvenInvalidCount(t *testing.T) {
	if got := Money(100).SplitEven(0); got != nil {
		t.Errorf("SplitEven(0) = %v, want nil", got)
	}
	if got := Money(100).SplitEven(-2); got != nil {
		t.Errorf("SplitEven(-2) = %v, want nil", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		in   Money
		want string
	}{
		{1234, "12.34"},
		{-5, "-0.05"},
		{0, "0.00"},
		{9000, "90.00"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("Money(%d).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	m := FromFloat(45.67)
	if m != 4567 {
		t.Fatalf("FromFloat(45.67) = %d, want 4567", m)
	}
	if got := m.Float64(); got != 45.67 {
		t.Errorf("Float64() = %v, want 45.67", got)
	}
}
