package analysis

// WeightFunc scales a neighboring measure's correlation coefficient by its
// distance (in measures, signed) from the base measure. Implementations must
// be pure and treat positive and negative distances identically.
type WeightFunc func(coefficient float64, distance int) float64

// Divide is the default weighting policy: the coefficient divided by the
// absolute distance plus one. A measure's own estimate (distance 0) keeps
// full weight and contributions fall off hyperbolically.
func Divide(coefficient float64, distance int) float64 {
	if distance < 0 {
		distance = -distance
	}
	return coefficient / float64(distance+1)
}
