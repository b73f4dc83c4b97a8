package evg

import "testing"

// stubModel is a configurable XSecModel for adapter and integrator
// tests. Nil hooks default to permissive behavior with unit weight.
type stubModel struct {
	weight    func(in *Interaction) float64
	validProc func(in *Interaction) bool
	validKine func(in *Interaction) bool
}

func (m *stubModel) Weight(in *Interaction) float64 {
	if m.weight == nil {
		return 1
	}
	return m.weight(in)
}

func (m *stubModel) ValidProcess(in *Interaction) bool {
	if m.validProc == nil {
		return true
	}
	return m.validProc(in)
}

func (m *stubModel) ValidKinematics(in *Interaction) bool {
	if m.validKine == nil {
		return true
	}
	return m.validKine(in)
}

func testInteraction(scattering ScatteringType, energy float64) *Interaction {
	return NewInteraction(PdgNuMu, energy, Target{Z: 26, A: 56},
		Process{Scattering: scattering, Current: CurrentCC})
}

func TestD2XSecDxDy_SetsFreeVariables(t *testing.T) {
	var gotX, gotY float64
	m := &stubModel{weight: func(in *Interaction) float64 {
		gotX, _ = in.Kine.Get(KvX)
		gotY, _ = in.Kine.Get(KvY)
		return 1
	}}
	f := NewD2XSecDxDy(m, testInteraction(ScatteringDIS, 5))

	if f.NDim() != 2 {
		t.Fatalf("NDim() = %d, want 2", f.NDim())
	}
	f.Eval([]float64{0.3, 0.7})
	if gotX != 0.3 || gotY != 0.7 {
		t.Errorf("model saw (x, y) = (%v, %v), want (0.3, 0.7)", gotX, gotY)
	}
}

func TestD2XSecDxDy_DoesNotMutateCallerInteraction(t *testing.T) {
	in := testInteraction(ScatteringDIS, 5)
	f := NewD2XSecDxDy(&stubModel{}, in)
	f.Eval([]float64{0.3, 0.7})

	if _, ok := in.Kine.Get(KvX); ok {
		t.Error("adapter evaluation leaked kinematics into the caller's Interaction")
	}
}

func TestD2XSecDxDyWithCuts_OutsideCutIsExactlyZero(t *testing.T) {
	calls := 0
	m := &stubModel{weight: func(in *Interaction) float64 { calls++; return 42 }}
	in := testInteraction(ScatteringDIS, 5)

	// W cut far above anything reachable at 5 GeV.
	f := NewD2XSecDxDyWithCuts(m, in, Range{Min: 100, Max: 200}, Range{Min: 0, Max: 1000})

	if got := f.Eval([]float64{0.3, 0.7}); got != 0 {
		t.Errorf("Eval outside W cut = %v, want exactly 0", got)
	}
	if calls != 0 {
		t.Error("model must not be evaluated outside the declared cuts")
	}
}

func TestD2XSecDxDyWithCuts_InsideCutDelegates(t *testing.T) {
	m := &stubModel{weight: func(in *Interaction) float64 { return 42 }}
	in := testInteraction(ScatteringDIS, 5)

	// Wide open cuts: every physical point passes.
	f := NewD2XSecDxDyWithCuts(m, in, Range{Min: 0, Max: 100}, Range{Min: 0, Max: 1000})
	if got := f.Eval([]float64{0.3, 0.7}); got != 42 {
		t.Errorf("Eval inside cuts = %v, want 42", got)
	}
}

func TestDXSecDy_InvalidKinematicsIsZero(t *testing.T) {
	m := &stubModel{validKine: func(in *Interaction) bool { return false }}
	f := NewDXSecDy(m, testInteraction(ScatteringIMD, 5))
	if got := f.Eval([]float64{0.5}); got != 0 {
		t.Errorf("Eval with invalid kinematics = %v, want exactly 0", got)
	}
}

func TestSliceAdapters_HoldFixedVariable(t *testing.T) {
	var seen Kinematics
	m := &stubModel{weight: func(in *Interaction) float64 {
		seen = in.Kine.Clone()
		return 1
	}}
	in := testInteraction(ScatteringDIS, 5)

	NewD2XSecDxDyAtX(m, in, 0.25).Eval([]float64{0.9})
	if x, _ := seen.Get(KvX); x != 0.25 {
		t.Errorf("fixed x = %v, want 0.25", x)
	}
	if y, _ := seen.Get(KvY); y != 0.9 {
		t.Errorf("free y = %v, want 0.9", y)
	}

	NewD2XSecDWDQ2AtW(m, in, 1.5).Eval([]float64{2.5})
	if w, _ := seen.Get(KvW); w != 1.5 {
		t.Errorf("fixed W = %v, want 1.5", w)
	}
	if q2, _ := seen.Get(KvQ2); q2 != 2.5 {
		t.Errorf("free Q2 = %v, want 2.5", q2)
	}
}
