package indicator

import (
	"math"
	"testing"
)

func TestSMA_Basic(t *testing.T) {
	prices := []float64{1, 2, 3, 4, 5}
	out := SMA(prices, 3)

	if Defined(out[0]) || Defined(out[1]) {
		t.Error("expected SMA undefined before a full window")
	}
	want := []float64{2, 3, 4}
	for i, w := range want {
		if got := out[i+2]; math.Abs(got-w) > 1e-9 {
			t.Errorf("SMA[%d]: expected %.4f, got %.4f", i+2, w, got)
		}
	}
}

func TestSMA_ShortSeries(t *testing.T) {
	out := SMA([]float64{1, 2}, 5)
	for i, v := range out {
		if Defined(v) {
			t.Errorf("index %d: expected undefined for short series, got %.4f", i, v)
		}
	}
}

func TestEMA_SeededByFirstValue(t *testing.T) {
	// period 3 → alpha 0.5
	out := EMA([]float64{2, 4, 8}, 3)
	want := []float64{2, 3, 5.5}
	for i, w := range want {
		if math.Abs(out[i]-w) > 1e-9 {
			t.Errorf("EMA[%d]: expected %.4f, got %.4f", i, w, out[i])
		}
	}
}

func TestEMA_ConstantSeries(t *testing.T) {
	out := EMA([]float64{7, 7, 7, 7}, 5)
	for i, v := range out {
		if math.Abs(v-7) > 1e-9 {
			t.Errorf("EMA[%d]: expected 7, got %.4f", i, v)
		}
	}
}

func TestLatest(t *testing.T) {
	if Latest(nil) != nil {
		t.Error("expected nil for empty series")
	}
	if Latest([]float64{1, math.NaN()}) != nil {
		t.Error("expected nil when last value is undefined")
	}
	p := Latest([]float64{1, 2, 3})
	if p == nil || *p != 3 {
		t.Errorf("expected 3, got %v", p)
	}
}
