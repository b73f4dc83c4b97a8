package record

import "github.com/evgen-sim/evgen-sim/evg"

// Nuclei use the 10-digit 10LZZZAAAI PDG scheme; PdgBindino is a
// generator-internal pseudo-particle code with no PDG meaning.
const (
	// PdgBindino labels the massless bookkeeping particle added by the
	// binding-energy correction to balance the event 4-momentum.
	PdgBindino = 2000000101

	ionBase = 1000000000
)

// IonPdgCode builds the nuclear PDG code 10LZZZAAAI (L=0, I=0) for a
// nucleus with Z protons and mass number A.
func IonPdgCode(z, a int) int {
	return ionBase + z*10000 + a*10
}

// IsIon reports whether the code denotes a nucleus.
func IsIon(pdg int) bool {
	return pdg >= ionBase && pdg != PdgBindino
}

// IsNeutronOrProton reports whether the code denotes a nucleon.
func IsNeutronOrProton(pdg int) bool {
	return pdg == evg.PdgProton || pdg == evg.PdgNeutron
}
