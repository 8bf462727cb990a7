package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivideIdentityAtZeroDistance(t *testing.T) {
	for _, c := range []float64{0.0, 0.25, 1.0, 4.0, -0.5} {
		assert.Equal(t, c, Divide(c, 0))
	}
}

func TestDivideSymmetry(t *testing.T) {
	for d := 0; d <= 8; d++ {
		assert.Equal(t, Divide(0.9, d), Divide(0.9, -d), "distance %d", d)
	}
}

func TestDivideAttenuation(t *testing.T) {
	assert.InDelta(t, 2.0, Divide(4.0, -1), 1e-12)
	assert.InDelta(t, 0.3, Divide(0.9, 2), 1e-12)
	assert.InDelta(t, 0.25, Divide(1.0, 3), 1e-12)
}
