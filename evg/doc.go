// Package evg provides the core event-generation pipeline for evgen-sim.
//
// # Reading Guide
//
// Start with these three files to understand the pipeline:
//   - interaction.go: the Interaction description (probe, target, process, kinematics)
//   - xsec.go: reduction of a differential cross-section model to one total value
//   - selector.go: weighted random selection of the interaction channel for a probe
//
// # Architecture
//
// The evg package defines the interfaces and the selection machinery;
// implementations live in sub-packages:
//   - evg/models/: differential cross-section models and interaction generators
//   - evg/record/: the generated event record and post-generation corrections
//
// # Key Interfaces
//
// The extension points are small interfaces:
//   - ScalarFunc: real-valued function of a fixed-size vector, the integrand shape
//   - Integrator: pluggable quadrature strategy, selected by configuration name
//   - XSecModel: opaque differential cross-section provider (weight + validity)
//   - InteractionGenerator: produces a candidate Interaction for a probe/target
//
// Everything on the selection path is single-threaded and deterministic for a
// fixed seed: same seed and same channel registration order reproduce the same
// events bit-for-bit.
package evg
