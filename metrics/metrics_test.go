package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hypertile/bfs"
	"github.com/katalvlaran/hypertile/builder"
	"github.com/katalvlaran/hypertile/geom"
	"github.com/katalvlaran/hypertile/metrics"
)

// gather returns the metric families of reg by name.
func gather(t *testing.T, reg *prometheus.Registry) map[string]*dto.MetricFamily {
	t.Helper()
	mfs, err := reg.Gather()
	require.NoError(t, err)
	out := make(map[string]*dto.MetricFamily, len(mfs))
	for _, mf := range mfs {
		out[mf.GetName()] = mf
	}
	return out
}

func value(mf *dto.MetricFamily) float64 {
	m := mf.GetMetric()[0]
	if m.GetCounter() != nil {
		return m.GetCounter().GetValue()
	}
	return m.GetGauge().GetValue()
}

func TestCollector(t *testing.T) {
	g := geom.Sphere2()
	tl, err := builder.NewRegular(g, 5, 3)
	require.NoError(t, err)
	_, err = bfs.Collect(tl.Origin().C7, bfs.WithMaxCount(100))
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(metrics.NewCollector(tl.World(), g)))

	mfs := gather(t, reg)
	require.Len(t, mfs, 7)
	require.Equal(t, 12.0, value(mfs["hypertile_heptagons"]))
	require.Equal(t, 12.0, value(mfs["hypertile_cells"]))
	// Each of the 30 edges is generated by exactly one hook call.
	require.Equal(t, 30.0, value(mfs["hypertile_create_mov_calls_total"]))
	require.Equal(t, 30.0, value(mfs["hypertile_create_step_calls_total"]))
	require.Equal(t, dto.MetricType_COUNTER, mfs["hypertile_create_step_calls_total"].GetType())
	require.Equal(t, dto.MetricType_GAUGE, mfs["hypertile_precision_worst_distance"].GetType())

	lbl := mfs["hypertile_cells"].GetMetric()[0].GetLabel()
	require.Len(t, lbl, 1)
	require.Equal(t, "world", lbl[0].GetName())
	require.Equal(t, tl.World().ID().String(), lbl[0].GetValue())
}

func TestCollectorWithoutGeometry(t *testing.T) {
	tl, err := builder.NewRegular(geom.Euclid2(), 4, 4)
	require.NoError(t, err)

	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(metrics.NewCollector(tl.World(), nil)))
	mfs := gather(t, reg)
	require.Len(t, mfs, 5)
	require.NotContains(t, mfs, "hypertile_precision_warnings_total")

	// A second world registers alongside the first.
	tl2, err := builder.NewRegular(geom.Euclid2(), 4, 4)
	require.NoError(t, err)
	require.NoError(t, reg.Register(metrics.NewCollector(tl2.World(), nil)))
	require.Len(t, gather(t, reg)["hypertile_cells"].GetMetric(), 2)
}
