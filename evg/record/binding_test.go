package record

import (
	"math"
	"testing"

	"github.com/evgen-sim/evgen-sim/evg"
	"github.com/evgen-sim/evgen-sim/evg/internal/testutil"
)

const testBinding = 0.010 // GeV

// boundNucleonRecord builds the minimal hit topology the corrector acts
// on: ion -> struck nucleon target -> stable final-state proton.
func boundNucleonRecord(p4 evg.FourVector) (*EventRecord, int) {
	rec := NewEventRecord()
	ion := rec.Append(Particle{
		PDG:    IonPdgCode(26, 56),
		Status: StatusInitialState,
		Mother: -1,
	})
	struck := rec.Append(Particle{
		PDG:    evg.PdgProton,
		Status: StatusNucleonTarget,
		Mass:   evg.ProtonMass,
		Mother: ion,
	})
	out := rec.Append(Particle{
		PDG:    evg.PdgProton,
		Status: StatusStableFinalState,
		P4:     p4,
		Mass:   evg.ProtonMass,
		Mother: struck,
	})
	return rec, out
}

func TestBindingCorrector_ConservesFourMomentum(t *testing.T) {
	p4 := evg.FourVector{E: 1.4, Px: 0.2, Py: -0.1, Pz: 1.0}
	rec, out := boundNucleonRecord(p4)
	tgt := evg.Target{Z: 26, A: 56}

	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, tgt)

	if rec.Len() != 4 {
		t.Fatalf("Len() = %d, want 4 (one bindino appended)", rec.Len())
	}

	nucleon, _ := rec.Particle(out)
	bindino, _ := rec.Particle(3)

	testutil.AssertFloat64Equal(t, "nucleon energy", p4.E-testBinding, nucleon.P4.E, 1e-12)
	testutil.AssertFloat64Equal(t, "bindino energy", testBinding, bindino.P4.E, 1e-12)

	// The pair must reproduce the original 4-momentum component by
	// component; the bindino exists for exactly this.
	sum := nucleon.P4.Add(bindino.P4)
	testutil.AssertFloat64Equal(t, "summed E", p4.E, sum.E, 1e-12)
	testutil.AssertFloat64Equal(t, "summed Px", p4.Px, sum.Px, 1e-12)
	testutil.AssertFloat64Equal(t, "summed Py", p4.Py, sum.Py, 1e-12)
	testutil.AssertFloat64Equal(t, "summed Pz", p4.Pz, sum.Pz, 1e-12)
}

func TestBindingCorrector_NucleonStaysOnShell(t *testing.T) {
	rec, out := boundNucleonRecord(evg.FourVector{E: 1.4, Px: 0.2, Py: -0.1, Pz: 1.0})
	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, evg.Target{Z: 26, A: 56})

	nucleon, _ := rec.Particle(out)
	wantP := math.Sqrt(nucleon.P4.E*nucleon.P4.E - nucleon.Mass*nucleon.Mass)
	testutil.AssertFloat64Equal(t, "momentum magnitude after correction",
		wantP, nucleon.P4.P(), 1e-10)
}

func TestBindingCorrector_BindinoIsMasslessBookkeeping(t *testing.T) {
	rec, _ := boundNucleonRecord(evg.FourVector{E: 1.4, Pz: 1.0})
	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, evg.Target{Z: 26, A: 56})

	bindino, ok := rec.Particle(3)
	if !ok {
		t.Fatal("bindino not appended")
	}
	if bindino.PDG != PdgBindino {
		t.Errorf("PDG = %d, want %d", bindino.PDG, PdgBindino)
	}
	if bindino.Status != StatusStableFinalState {
		t.Errorf("Status = %v, want stable final state", bindino.Status)
	}
	if bindino.Mass != 0 {
		t.Errorf("Mass = %g, want 0", bindino.Mass)
	}
	if bindino.Mother != -1 {
		t.Errorf("Mother = %d, want -1", bindino.Mother)
	}
}

func TestBindingCorrector_FreeNucleonTargetUntouched(t *testing.T) {
	p4 := evg.FourVector{E: 1.4, Pz: 1.0}
	rec, out := boundNucleonRecord(p4)

	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, evg.Target{Z: 1, A: 1})

	nucleon, _ := rec.Particle(out)
	if nucleon.P4 != p4 {
		t.Error("free-nucleon target must leave the record untouched")
	}
	if rec.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (no bindino)", rec.Len())
	}
}

func TestBindingCorrector_NoMotherChainUntouched(t *testing.T) {
	p4 := evg.FourVector{E: 1.4, Pz: 1.0}
	rec := NewEventRecord()
	out := rec.Append(Particle{
		PDG:    evg.PdgProton,
		Status: StatusStableFinalState,
		P4:     p4,
		Mass:   evg.ProtonMass,
		Mother: -1,
	})

	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, evg.Target{Z: 26, A: 56})

	nucleon, _ := rec.Particle(out)
	if nucleon.P4 != p4 {
		t.Error("orphan nucleon must not be corrected")
	}
	if rec.Len() != 1 {
		t.Errorf("Len() = %d, want 1", rec.Len())
	}
}

func TestBindingCorrector_ZeroBindingEnergyIsNoOp(t *testing.T) {
	p4 := evg.FourVector{E: 1.4, Pz: 1.0}
	rec, out := boundNucleonRecord(p4)

	c := NewBindingCorrector(func(evg.Target) float64 { return 0 })
	c.Apply(rec, evg.Target{Z: 26, A: 56})

	nucleon, _ := rec.Particle(out)
	if nucleon.P4 != p4 || rec.Len() != 3 {
		t.Error("zero binding energy must leave the record untouched")
	}
}

func TestBindingCorrector_NucleonAtRestSkipped(t *testing.T) {
	rec, out := boundNucleonRecord(evg.FourVector{E: evg.ProtonMass})

	c := NewBindingCorrector(func(evg.Target) float64 { return testBinding })
	c.Apply(rec, evg.Target{Z: 26, A: 56})

	nucleon, _ := rec.Particle(out)
	if nucleon.P4.E != evg.ProtonMass || rec.Len() != 3 {
		t.Error("a nucleon at rest cannot be rescaled and must be skipped")
	}
}

func TestSemiEmpiricalBindingEnergy(t *testing.T) {
	// Iron-56 sits near the peak of the binding curve, about
	// 8.8 MeV per nucleon.
	got := SemiEmpiricalBindingEnergy(evg.Target{Z: 26, A: 56})
	testutil.AssertFloat64Equal(t, "Fe-56 binding energy per nucleon", 0.0088, got, 0.05)

	if SemiEmpiricalBindingEnergy(evg.Target{Z: 1, A: 1}) != 0 {
		t.Error("a free nucleon binds nothing")
	}
	if SemiEmpiricalBindingEnergy(evg.Target{Z: 0, A: 1}) != 0 {
		t.Error("a free neutron binds nothing")
	}
}
