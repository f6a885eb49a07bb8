package builder

import (
	"github.com/katalvlaran/hypertile/core"
	"github.com/katalvlaran/hypertile/geom"
)

// bucketProbes are the key offsets of the 27 buckets around a point: ±1 in
// each of the three coordinates of geom.Bucketer.
var bucketProbes = func() []uint32 {
	out := make([]uint32, 0, 27)
	for _, a := range []int32{-1, 0, 1} {
		for _, b := range []int32{-1, 0, 1} {
			for _, c := range []int32{-1, 0, 1} {
				out = append(out, uint32(a+1000*b+1000000*c))
			}
		}
	}
	return out
}()

func (t *Tiling) bucket(h geom.Point) uint32 {
	return t.g.Bucketer(h.Scale(bucketScale))
}

// lookup finds the heptagon centred at h, if any. A comparison in the
// unreliable distance band is reported as a geom precision error.
func (t *Tiling) lookup(h geom.Point) (*core.Heptagon, error) {
	k := t.bucket(h)
	for _, off := range bucketProbes {
		for _, x := range t.buckets[k+off] {
			same, err := t.g.SamePointMayWarn(t.g.TC0(t.pos[x]), h)
			if err != nil {
				return nil, err
			}
			if same {
				return x, nil
			}
		}
	}
	return nil, nil
}
