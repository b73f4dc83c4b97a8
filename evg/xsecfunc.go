package evg

// xsecfunc.go exports an XSecModel plus a fixed interaction as a
// ScalarFunc so the numerical integration code can consume it. Each
// adapter variant decides which kinematic axes are free integration
// variables and which stay fixed; optional boundary cuts restrict the
// allowed region before the model is evaluated.
//
// Adapters clone the interaction at construction, so evaluating one
// never mutates the caller's Interaction. They are built fresh per
// integration call and must not be shared.

// xsecFunc is the common base of all adapter variants.
type xsecFunc struct {
	model XSecModel
	in    *Interaction
	ndim  int
}

func newXSecFunc(m XSecModel, in *Interaction, ndim int) xsecFunc {
	return xsecFunc{model: m, in: in.Clone(), ndim: ndim}
}

func (f *xsecFunc) NDim() int { return f.ndim }

// weight evaluates the wrapped model at the adapter's current kinematic
// point. Out-of-threshold or otherwise disallowed points come back as 0
// per the XSecModel contract.
func (f *xsecFunc) weight() float64 {
	if !f.model.ValidKinematics(f.in) {
		return 0
	}
	return f.model.Weight(f.in)
}

// === 2-D adapters ===

// D2XSecDxDy is d2xsec/dxdy = f(x,y) at fixed probe energy.
type D2XSecDxDy struct {
	xsecFunc
}

func NewD2XSecDxDy(m XSecModel, in *Interaction) *D2XSecDxDy {
	return &D2XSecDxDy{newXSecFunc(m, in, 2)}
}

func (f *D2XSecDxDy) Eval(x []float64) float64 {
	f.in.Kine[KvX] = x[0]
	f.in.Kine[KvY] = x[1]
	return f.weight()
}

// D2XSecDxDyWithCuts is d2xsec/dxdy = f(x,y) at fixed probe energy,
// restricted to declared W and Q2 windows. Points whose derived (W, Q2)
// fall outside either cut evaluate to exactly 0.
type D2XSecDxDyWithCuts struct {
	xsecFunc
	wCut  Range
	q2Cut Range
}

func NewD2XSecDxDyWithCuts(m XSecModel, in *Interaction, wCut, q2Cut Range) *D2XSecDxDyWithCuts {
	return &D2XSecDxDyWithCuts{xsecFunc: newXSecFunc(m, in, 2), wCut: wCut, q2Cut: q2Cut}
}

func (f *D2XSecDxDyWithCuts) Eval(x []float64) float64 {
	w, q2 := WQ2FromXY(f.in.ProbeE, ProtonMass, x[0], x[1])
	if !f.wCut.Contains(w) || !f.q2Cut.Contains(q2) {
		return 0
	}
	f.in.Kine[KvX] = x[0]
	f.in.Kine[KvY] = x[1]
	return f.weight()
}

// D2XSecDWDQ2 is d2xsec/dWdQ2 = f(W,Q2) at fixed probe energy.
type D2XSecDWDQ2 struct {
	xsecFunc
}

func NewD2XSecDWDQ2(m XSecModel, in *Interaction) *D2XSecDWDQ2 {
	return &D2XSecDWDQ2{newXSecFunc(m, in, 2)}
}

func (f *D2XSecDWDQ2) Eval(x []float64) float64 {
	f.in.Kine[KvW] = x[0]
	f.in.Kine[KvQ2] = x[1]
	return f.weight()
}

// === 1-D adapters ===

// DXSecDy is dxsec/dy = f(y) at fixed probe energy.
type DXSecDy struct {
	xsecFunc
}

func NewDXSecDy(m XSecModel, in *Interaction) *DXSecDy {
	return &DXSecDy{newXSecFunc(m, in, 1)}
}

func (f *DXSecDy) Eval(x []float64) float64 {
	f.in.Kine[KvY] = x[0]
	return f.weight()
}

// DXSecDQ2 is dxsec/dQ2 = f(Q2) at fixed probe energy.
type DXSecDQ2 struct {
	xsecFunc
}

func NewDXSecDQ2(m XSecModel, in *Interaction) *DXSecDQ2 {
	return &DXSecDQ2{newXSecFunc(m, in, 1)}
}

func (f *DXSecDQ2) Eval(x []float64) float64 {
	f.in.Kine[KvQ2] = x[0]
	return f.weight()
}

// === 1-D slices of 2-D differentials ===

// D2XSecDxDyAtX is d2xsec/dxdy = f(y) with both probe energy and x held
// fixed.
type D2XSecDxDyAtX struct {
	xsecFunc
	x float64
}

func NewD2XSecDxDyAtX(m XSecModel, in *Interaction, x float64) *D2XSecDxDyAtX {
	return &D2XSecDxDyAtX{xsecFunc: newXSecFunc(m, in, 1), x: x}
}

func (f *D2XSecDxDyAtX) Eval(x []float64) float64 {
	f.in.Kine[KvX] = f.x
	f.in.Kine[KvY] = x[0]
	return f.weight()
}

// D2XSecDxDyAtY is d2xsec/dxdy = f(x) with both probe energy and y held
// fixed.
type D2XSecDxDyAtY struct {
	xsecFunc
	y float64
}

func NewD2XSecDxDyAtY(m XSecModel, in *Interaction, y float64) *D2XSecDxDyAtY {
	return &D2XSecDxDyAtY{xsecFunc: newXSecFunc(m, in, 1), y: y}
}

func (f *D2XSecDxDyAtY) Eval(x []float64) float64 {
	f.in.Kine[KvX] = x[0]
	f.in.Kine[KvY] = f.y
	return f.weight()
}

// D2XSecDWDQ2AtW is d2xsec/dWdQ2 = f(Q2) with both probe energy and W
// held fixed.
type D2XSecDWDQ2AtW struct {
	xsecFunc
	w float64
}

func NewD2XSecDWDQ2AtW(m XSecModel, in *Interaction, w float64) *D2XSecDWDQ2AtW {
	return &D2XSecDWDQ2AtW{xsecFunc: newXSecFunc(m, in, 1), w: w}
}

func (f *D2XSecDWDQ2AtW) Eval(x []float64) float64 {
	f.in.Kine[KvW] = f.w
	f.in.Kine[KvQ2] = x[0]
	return f.weight()
}

// D2XSecDWDQ2AtQ2 is d2xsec/dWdQ2 = f(W) with both probe energy and Q2
// held fixed.
type D2XSecDWDQ2AtQ2 struct {
	xsecFunc
	q2 float64
}

func NewD2XSecDWDQ2AtQ2(m XSecModel, in *Interaction, q2 float64) *D2XSecDWDQ2AtQ2 {
	return &D2XSecDWDQ2AtQ2{xsecFunc: newXSecFunc(m, in, 1), q2: q2}
}

func (f *D2XSecDWDQ2AtQ2) Eval(x []float64) float64 {
	f.in.Kine[KvW] = x[0]
	f.in.Kine[KvQ2] = f.q2
	return f.weight()
}
