package analysis

// Interpretation maps key names to correlation coefficients for one measure,
// preserving insertion order so that ties resolve to the hypothesis that was
// proposed first (the primary, then alternates in rank order).
type Interpretation struct {
	names  []string
	coeffs map[string]float64
}

// NewInterpretation creates an empty interpretation.
func NewInterpretation() *Interpretation {
	return &Interpretation{coeffs: make(map[string]float64)}
}

// Set records a coefficient for a key name. The first Set for a name fixes
// its position in the ordering; later calls only update the value.
func (p *Interpretation) Set(name string, coefficient float64) {
	if _, ok := p.coeffs[name]; !ok {
		p.names = append(p.names, name)
	}
	p.coeffs[name] = coefficient
}

// Accumulate adds delta to an existing key's coefficient. Unknown names are
// inserted, so accumulation into a fresh copy is always safe.
func (p *Interpretation) Accumulate(name string, delta float64) {
	if _, ok := p.coeffs[name]; !ok {
		p.Set(name, delta)
		return
	}
	p.coeffs[name] += delta
}

// Coefficient returns the coefficient for a key name and whether it exists.
func (p *Interpretation) Coefficient(name string) (float64, bool) {
	c, ok := p.coeffs[name]
	return c, ok
}

// Names returns the key names in insertion order. The caller must not
// modify the returned slice.
func (p *Interpretation) Names() []string {
	return p.names
}

// Len returns the number of distinct key hypotheses.
func (p *Interpretation) Len() int {
	return len(p.names)
}

// Clone returns an independent copy. Mutating the copy never affects the
// original, which is how cached interpretations stay pristine while the
// smoothing pass accumulates into working copies.
func (p *Interpretation) Clone() *Interpretation {
	c := &Interpretation{
		names:  make([]string, len(p.names)),
		coeffs: make(map[string]float64, len(p.coeffs)),
	}
	copy(c.names, p.names)
	for name, coeff := range p.coeffs {
		c.coeffs[name] = coeff
	}
	return c
}

// Best returns the key name with the highest coefficient. Ties go to the
// earliest-inserted name. The second return is false for an empty
// interpretation.
func (p *Interpretation) Best() (string, bool) {
	if len(p.names) == 0 {
		return "", false
	}
	bestName := p.names[0]
	bestCoeff := p.coeffs[bestName]
	for _, name := range p.names[1:] {
		if p.coeffs[name] > bestCoeff {
			bestName = name
			bestCoeff = p.coeffs[name]
		}
	}
	return bestName, true
}
