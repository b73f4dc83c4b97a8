package evg

// XSecModel is an opaque differential cross-section provider for one
// process. The core calls it as a black box and never inspects its
// internals.
//
// Contract: Weight must return 0, not an error, for kinematically
// forbidden input; the pipeline relies on this to treat invalid phase
// space as zero probability.
type XSecModel interface {
	// Weight returns the differential cross section at the
	// interaction's current kinematic point, in arbitrary but
	// channel-consistent units. Non-negative.
	Weight(in *Interaction) float64

	// ValidProcess reports whether the model applies to the
	// interaction's probe/target/process combination at all.
	ValidProcess(in *Interaction) bool

	// ValidKinematics reports whether the interaction's current
	// kinematic point (including probe energy thresholds) is allowed.
	ValidKinematics(in *Interaction) bool
}
