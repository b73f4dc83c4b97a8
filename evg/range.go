package evg

// Range is a closed interval [Min, Max] over one kinematic variable.
// It serves both as an integration bound and as a validity cut.
// An inverted range (Min > Max) is an empty domain, not an error:
// everything downstream treats it as contributing zero weight.
type Range struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Empty reports whether the interval contains no points.
func (r Range) Empty() bool {
	return r.Min > r.Max
}

// Width returns Max-Min, or 0 for an empty interval.
func (r Range) Width() float64 {
	if r.Empty() {
		return 0
	}
	return r.Max - r.Min
}

// Contains reports whether v lies inside the closed interval.
func (r Range) Contains(v float64) bool {
	return !r.Empty() && v >= r.Min && v <= r.Max
}

// Intersect returns the overlap of r and o. Disjoint intervals yield
// an empty range.
func (r Range) Intersect(o Range) Range {
	out := Range{Min: r.Min, Max: r.Max}
	if o.Min > out.Min {
		out.Min = o.Min
	}
	if o.Max < out.Max {
		out.Max = o.Max
	}
	return out
}

// Shrink pulls both endpoints inward by frac of the width. Integration
// strategies use it to keep quadrature nodes away from endpoint
// singularities (e.g. a log(1-y) divergence at y=1).
func (r Range) Shrink(frac float64) Range {
	if r.Empty() || frac <= 0 {
		return r
	}
	eps := frac * r.Width()
	return Range{Min: r.Min + eps, Max: r.Max - eps}
}
