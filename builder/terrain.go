package builder

import (
	"math"

	"github.com/katalvlaran/hypertile/core"
)

// EdgeLength is the distance between the centres of adjacent heptagons.
func (t *Tiling) EdgeLength() float64 { return 2 * t.r }

// TerrainWeight prices the step across edge d of c: the centre distance,
// raised in proportion to the landscape height of the destination. Without
// WithLandscape every step costs EdgeLength. The destination is generated
// if needed.
func (t *Tiling) TerrainWeight(c *core.Cell, d int) float64 {
	to := c.CMove(d)
	h := float64(to.LandParam) / noiseRange
	return t.EdgeLength() * (1 + math.Max(0, h))
}
