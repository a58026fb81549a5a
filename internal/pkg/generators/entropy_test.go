package generators

import (
	"math"
	"testing"
)

func TestEntropy(t *testing.T) {
	tests := []struct {
		name    string
		setSize int
		count   int
		unique  bool
		want    float64
	}{
		{name: "xkcd 936", setSize: 2048, count: 4, want: 44},
		{name: "post-it 16 of 32", setSize: 32, count: 16, want: 80},
		{name: "eff diceware", setSize: 7776, count: 6, want: 6 * math.Log2(7776)},
		{name: "unique 4 of 4", setSize: 4, count: 4, unique: true, want: math.Log2(24)},
		{name: "unique 2 of 2048", setSize: 2048, count: 2, unique: true, want: math.Log2(2048 * 2047)},
		{name: "empty set", setSize: 0, count: 4, want: 0},
		{name: "single symbol", setSize: 1, count: 10, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Entropy(tt.setSize, tt.count, tt.unique)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Entropy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBitsPerSymbol(t *testing.T) {
	if got := BitsPerSymbol(32); got != 5 {
		t.Errorf("BitsPerSymbol(32) = %v, want 5", got)
	}
	if got := BitsPerSymbol(0); got != 0 {
		t.Errorf("BitsPerSymbol(0) = %v, want 0", got)
	}
}
