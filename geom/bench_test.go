package geom_test

import (
	"testing"

	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/matrix"
)

// sinks to defeat dead-code elimination
var (
	sinkM geom.Matrix
	sinkP geom.Point
	sinkF float64
)

func BenchmarkFixmatrix_H3(b *testing.B) {
	g := geom.Hyperbolic3()
	T := g.Xpush(0.3).Mul(g.Ypush(0.7)).Mul(g.Zpush(-0.2))
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkM = g.Fixmatrix(T)
	}
}

func BenchmarkHdist_H2(b *testing.B) {
	g := geom.Hyperbolic2()
	x, y := g.Xspinpush0(0.3, 1.5), g.Xspinpush0(2.1, 0.8)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkF = g.Hdist(x, y)
	}
}

func BenchmarkInverseExp(b *testing.B) {
	for _, name := range []string{"nil", "sol", "sl2"} {
		g, _ := geom.ByName(name)
		p := matrix.ShiftLessPoint(g.DirectExp(geom.Point{0.3, -0.2, 0.25, 0}))
		for _, prec := range []geom.Precision{geom.PNormal, geom.PQuick} {
			b.Run(name+"/"+prec.String(), func(b *testing.B) {
				for i := 0; i < b.N; i++ {
					sinkP = g.InverseExp(p, prec)
				}
			})
		}
	}
}
