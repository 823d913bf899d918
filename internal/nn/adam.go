package nn

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adam implements the Adam update rule with bias correction. Moment state
// is allocated lazily per parameter, keyed by identity.
type Adam struct {
	LR    float64
	Beta1 float64
	Beta2 float64
	Eps   float64

	t int
	m map[*Param]*mat.Dense
	v map[*Param]*mat.Dense
}

// NewAdam returns an optimizer with the usual β1=0.9, β2=0.999, ε=1e-8.
func NewAdam(lr float64) *Adam {
	return &Adam{
		LR:    lr,
		Beta1: 0.9,
		Beta2: 0.999,
		Eps:   1e-8,
		m:     make(map[*Param]*mat.Dense),
		v:     make(map[*Param]*mat.Dense),
	}
}

// Step applies one update to every parameter from its accumulated gradient.
// Gradients are left untouched; callers zero them per batch.
func (a *Adam) Step(params []*Param) {
	a.t++
	c1 := 1 - math.Pow(a.Beta1, float64(a.t))
	c2 := 1 - math.Pow(a.Beta2, float64(a.t))

	for _, p := range params {
		rows, cols := p.Value.Dims()
		m, ok := a.m[p]
		if !ok {
			m = mat.NewDense(rows, cols, nil)
			a.m[p] = m
			a.v[p] = mat.NewDense(rows, cols, nil)
		}
		v := a.v[p]

		for i := 0; i < rows; i++ {
			val := p.Value.RawRowView(i)
			grad := p.Grad.RawRowView(i)
			mr := m.RawRowView(i)
			vr := v.RawRowView(i)
			for j := range val {
				g := grad[j]
				mr[j] = a.Beta1*mr[j] + (1-a.Beta1)*g
				vr[j] = a.Beta2*vr[j] + (1-a.Beta2)*g*g
				val[j] -= a.LR * (mr[j] / c1) / (math.Sqrt(vr[j]/c2) + a.Eps)
			}
		}
	}
}
