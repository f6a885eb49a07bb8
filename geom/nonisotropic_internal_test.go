package geom

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNilClosedFormMatchesIntegrator(t *testing.T) {
	m := Nil().m.(nilModel)
	for _, v := range []Point{
		{0.5, -0.3, 0.8, 0},
		{0.2, 0.9, -2, 0},
		{-1, 0.1, 1.5, 0},
		{0, 0, 1, 0},
	} {
		closed := m.directExp(v)
		integrated := m.lieModel.directExp(v)
		for i := 0; i < 4; i++ {
			require.InDelta(t, integrated[i], closed[i], 1e-6, "v=%v coord %d", v, i)
		}
	}
}

func TestLieAlgebra_NilStructure(t *testing.T) {
	la := Nil().m.(nilModel).la
	// [X, Y] = Z and everything else commutes
	require.InDelta(t, 1.0, la.c[0][1][2], 1e-12)
	require.InDelta(t, -1.0, la.c[1][0][2], 1e-12)
	require.InDelta(t, 0.0, la.c[0][2][0], 1e-12)
	require.InDelta(t, 0.0, la.c[1][2][1], 1e-12)
}
