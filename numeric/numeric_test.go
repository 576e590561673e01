package numeric

import (
	"errors"
	"testing"
)

func TestApproxMinMaxExact(t *testing.T) {
	got := []float32{3, -1, 7, 0, 2}
	lo, hi := ApproxMinMax(got)
	if lo != -1 || hi != 7 {
		t.Fatalf("ApproxMinMax() = (%v, %v), want (-1, 7)", lo, hi)
	}
}

func TestApproxMinMaxEmpty(t *testing.T) {
	lo, hi := ApproxMinMax(nil)
	if lo != 0 || hi != 0 {
		t.Fatalf("ApproxMinMax(nil) = (%v, %v), want (0, 0)", lo, hi)
	}
}

func TestApproxMinMaxSubsampled(t *testing.T) {
	// Large input: the estimate must stay within the true range.
	data := make([]float32, maxExactSamples*3)
	for i := range data {
		data[i] = float32(i % 1000)
	}
	lo, hi := ApproxMinMax(data)
	if lo < 0 || hi > 999 {
		t.Fatalf("ApproxMinMax() = (%v, %v), outside true range [0, 999]", lo, hi)
	}
	if hi-lo < 500 {
		t.Errorf("estimate span = %v, implausibly narrow for uniform data", hi-lo)
	}
}

func TestBinFixedCount(t *testing.T) {
	samples := []float32{0, 1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	counts, edges, err := Bin(samples, FixedBins(5))
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}
	if len(counts) != 5 {
		t.Fatalf("len(counts) = %d, want 5", len(counts))
	}
	if len(edges) != 6 {
		t.Fatalf("len(edges) = %d, want 6", len(edges))
	}
	if edges[0] != 0 || edges[5] != 10 {
		t.Errorf("edges span [%v, %v], want [0, 10]", edges[0], edges[5])
	}

	total := 0
	for _, c := range counts {
		total += c
	}
	if total != len(samples) {
		t.Errorf("sum(counts) = %d, want %d", total, len(samples))
	}
	// The maximum sample lands in the last bin, not past it.
	if counts[4] == 0 {
		t.Error("last bin empty; maximum sample was dropped")
	}
}

func TestBinEdgesMonotonic(t *testing.T) {
	counts, edges, err := Bin([]float32{2, 4, 4, 7, 9, 1, 5}, AutoBins())
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}
	if len(edges) != len(counts)+1 {
		t.Fatalf("len(edges) = %d, want len(counts)+1 = %d", len(edges), len(counts)+1)
	}
	for i := 1; i < len(edges); i++ {
		if edges[i] <= edges[i-1] {
			t.Fatalf("edges not strictly increasing at %d: %v <= %v", i, edges[i], edges[i-1])
		}
	}
}

func TestBinDegenerateRange(t *testing.T) {
	counts, edges, err := Bin([]float32{5, 5, 5, 5}, FixedBins(2))
	if err != nil {
		t.Fatalf("Bin() error = %v", err)
	}
	if edges[0] >= edges[len(edges)-1] {
		t.Fatalf("degenerate input produced empty edge span: %v", edges)
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 4 {
		t.Errorf("sum(counts) = %d, want 4", total)
	}
}

func TestBinNoSamples(t *testing.T) {
	_, _, err := Bin(nil, AutoBins())
	if !errors.Is(err, ErrNoSamples) {
		t.Fatalf("Bin(nil) error = %v, want ErrNoSamples", err)
	}
}

func TestBinSpecResolve(t *testing.T) {
	tests := []struct {
		name string
		spec BinSpec
		n    int
		want int
	}{
		{"fixed", FixedBins(7), 100, 7},
		{"auto sqrt", AutoBins(), 100, 10},
		{"sqrt rounds up", BinSpec{Strategy: "sqrt"}, 10, 4},
		{"sturges", BinSpec{Strategy: "sturges"}, 64, 7},
		{"zero value acts as auto", BinSpec{}, 16, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.spec.resolve(tt.n)
			if err != nil {
				t.Fatalf("resolve(%d) error = %v", tt.n, err)
			}
			if got != tt.want {
				t.Errorf("resolve(%d) = %d, want %d", tt.n, got, tt.want)
			}
		})
	}
}

func TestBinSpecUnknownStrategy(t *testing.T) {
	_, _, err := Bin([]float32{1, 2, 3}, BinSpec{Strategy: "fd"})
	if err == nil {
		t.Fatal("Bin() with unknown strategy succeeded, want error")
	}
}
