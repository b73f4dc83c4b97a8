// Package models provides the differential cross-section models and
// interaction generators bundled with evgen-sim. They are deliberately
// simplified shapes — the pipeline treats any XSecModel as an opaque
// weight provider — but they carry the structural features that stress
// the integration machinery: energy thresholds, endpoint log
// divergences, and an internal integral (the IMD dilogarithm).
package models
