package indicator

import (
	"math"
	"testing"
)

func TestRSI_Bounds(t *testing.T) {
	closes := []float64{44, 44.5, 44.1, 44.9, 45.2, 44.8, 45.5, 46.0, 45.7, 46.3,
		46.1, 46.8, 47.2, 46.9, 47.5, 47.1, 47.8, 48.2, 47.9, 48.5}
	out := RSI(closes, 14)
	for i, v := range out {
		if !Defined(v) {
			continue
		}
		if v < 0 || v > 100 {
			t.Errorf("RSI[%d] = %.2f out of [0, 100]", i, v)
		}
	}
	if !Defined(out[len(out)-1]) {
		t.Error("expected RSI defined at last index")
	}
}

func TestRSI_DefinedFromPeriod(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := RSI(closes, 14)
	for i := 0; i < 14; i++ {
		if Defined(out[i]) {
			t.Errorf("RSI[%d] should be undefined before %d deltas exist", i, 14)
		}
	}
	if !Defined(out[14]) {
		t.Error("RSI[14] should be defined")
	}
}

func TestRSI_SaturatesAt100(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 100 + float64(i)
	}
	out := RSI(closes, 14)
	if got := out[len(out)-1]; got != 100 {
		t.Errorf("expected RSI 100 for monotone gains, got %.2f", got)
	}
}

func TestRSI_FlatWindowUndefined(t *testing.T) {
	closes := make([]float64, 20)
	for i := range closes {
		closes[i] = 50
	}
	out := RSI(closes, 14)
	if Defined(out[len(out)-1]) {
		t.Errorf("expected undefined RSI for a flat window, got %.2f", out[len(out)-1])
	}
}

func TestRSI_BalancedMoves(t *testing.T) {
	// Alternating ±1 over period 2: avg gain == avg loss → RSI 50.
	closes := []float64{10, 11, 10, 11, 10}
	out := RSI(closes, 2)
	for i := 2; i < len(out); i++ {
		if math.Abs(out[i]-50) > 1e-9 {
			t.Errorf("RSI[%d]: expected 50, got %.4f", i, out[i])
		}
	}
}

func TestRSI_ShortSeries(t *testing.T) {
	out := RSI([]float64{1, 2, 3}, 14)
	for i, v := range out {
		if Defined(v) {
			t.Errorf("index %d: expected undefined, got %.2f", i, v)
		}
	}
}
