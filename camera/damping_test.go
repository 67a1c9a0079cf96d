package camera

import (
	"math"
	"testing"
)

func TestDampenFactorRange(t *testing.T) {
	if got := DampenFactor(10, 0); got != 0 {
		t.Errorf("zero dt should not move, got %v", got)
	}
	if got := DampenFactor(-1, 0.016); got != 1 {
		t.Errorf("negative rate should snap, got %v", got)
	}
	f := DampenFactor(10, 1.0/60)
	if f <= 0 || f >= 1 {
		t.Errorf("expected factor in (0,1), got %v", f)
	}
	want := 1 - math.Exp(-10.0/60)
	if math.Abs(float64(f)-want) > 1e-6 {
		t.Errorf("expected %v, got %v", want, f)
	}
}

func TestDampenFactorFrameRateIndependent(t *testing.T) {
	dt := float32(1.0 / 60)
	one := DampenFactor(10, dt)
	// Remaining distance after two small steps equals that of one double step.
	twoSteps := 1 - (1-one)*(1-one)
	double := DampenFactor(10, 2*dt)
	if math.Abs(float64(twoSteps-double)) > 1e-5 {
		t.Errorf("two steps %v != one double step %v", twoSteps, double)
	}
}
