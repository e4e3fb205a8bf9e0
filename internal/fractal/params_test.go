package fractal

import (
	"math"
	"testing"
)

func TestClampIterations(t *testing.T) {
	for i := -40; i <= 40; i++ {
		got := Params{Iterations: i, BranchAngle: 25, BaseLength: 100}.Clamp().Iterations
		want := i
		if want < 1 {
			want = 1
		}
		if want > 15 {
			want = 15
		}
		if got != want {
			t.Errorf("Clamp().Iterations for %d = %d, want %d", i, got, want)
		}
	}

	extremes := []struct {
		in, want int
	}{
		{math.MinInt, 1},
		{math.MaxInt, 15},
		{0, 1},
		{1, 1},
		{15, 15},
		{16, 15},
	}
	for _, tt := range extremes {
		if got := (Params{Iterations: tt.in}).Clamp().Iterations; got != tt.want {
			t.Errorf("Clamp().Iterations for %d = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestClampFloats(t *testing.T) {
	tests := []struct {
		name       string
		angle      float64
		length     float64
		wantAngle  float64
		wantLength float64
	}{
		{"in range", 25, 100, 25, 100},
		{"lower bounds", 5, 20, 5, 20},
		{"upper bounds", 60, 200, 60, 200},
		{"just below", 4.999, 19.999, 5, 20},
		{"just above", 60.001, 200.001, 60, 200},
		{"negative", -90, -1, 5, 20},
		{"zero", 0, 0, 5, 20},
		{"huge", 1e9, 1e9, 60, 200},
		{"infinities", math.Inf(1), math.Inf(-1), 60, 20},
		{"nan", math.NaN(), math.NaN(), 5, 20},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Params{Iterations: 5, BranchAngle: tt.angle, BaseLength: tt.length}.Clamp()
			if got.BranchAngle != tt.wantAngle {
				t.Errorf("BranchAngle = %v, want %v", got.BranchAngle, tt.wantAngle)
			}
			if got.BaseLength != tt.wantLength {
				t.Errorf("BaseLength = %v, want %v", got.BaseLength, tt.wantLength)
			}
			if !got.Valid() {
				t.Errorf("Clamp() = %+v is not Valid()", got)
			}
		})
	}
}

func TestClampFieldsIndependent(t *testing.T) {
	got := Params{Iterations: 99, BranchAngle: 30, BaseLength: 1}.Clamp()
	want := Params{Iterations: 15, BranchAngle: 30, BaseLength: 20}
	if got != want {
		t.Errorf("Clamp() = %+v, want %+v", got, want)
	}
}

func TestDefaultParams(t *testing.T) {
	want := Params{Iterations: 5, BranchAngle: 25, BaseLength: 100}
	if got := DefaultParams(); got != want {
		t.Errorf("DefaultParams() = %+v, want %+v", got, want)
	}
	if !DefaultParams().Valid() {
		t.Error("DefaultParams() is not valid")
	}
}

func TestSegmentCount(t *testing.T) {
	tests := []struct {
		iterations int
		want       int
	}{
		{math.MinInt, 1},
		{0, 1},
		{1, 1},
		{2, 3},
		{5, 31},
		{15, 32767},
		{16, 32767},
		{64, 32767},
		{math.MaxInt, 32767},
	}
	for _, tt := range tests {
		if got := (Params{Iterations: tt.iterations}).SegmentCount(); got != tt.want {
			t.Errorf("SegmentCount() for %d = %d, want %d", tt.iterations, got, tt.want)
		}
	}
}
