package evg

// Particle masses in GeV and common electroweak constants.
// Values are PDG world averages, truncated to the precision the toy
// models in evg/models need.
const (
	ElectronMass = 0.000511
	MuonMass     = 0.105658
	PionMass     = 0.139570
	ProtonMass   = 0.938272
	NeutronMass  = 0.939565
	AMU          = 0.931494 // atomic mass unit

	// GF is the Fermi coupling constant in GeV^-2.
	GF  = 1.16639e-5
	GF2 = GF * GF

	// Aem is the electromagnetic fine-structure constant.
	Aem = 1.0 / 137.035999
)

// PDG Monte Carlo numbering for the probes and nucleons the core needs
// to recognize.
const (
	PdgElectron = 11
	PdgNuE      = 12
	PdgMuon     = 13
	PdgNuMu     = 14
	PdgProton   = 2212
	PdgNeutron  = 2112
)
