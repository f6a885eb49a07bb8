package geom

import "log/slog"

// Option configures a Geometry at construction time.
type Option func(*options)

type options struct {
	logger           *slog.Logger
	monitor          *PrecisionMonitor
	affine           bool
	geodesicMovement bool
	embeddedChoice   EmbeddedShiftChoice
}

func defaultOptions() options {
	return options{
		logger:           slog.Default(),
		geodesicMovement: true,
		embeddedChoice:   SMCBoth,
	}
}

// WithLogger sets the logger used for precision warnings and
// non-convergence diagnostics. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithMonitor shares a precision monitor between geometries. By default
// every geometry owns a fresh one.
func WithMonitor(m *PrecisionMonitor) Option {
	return func(o *options) {
		if m != nil {
			o.monitor = m
		}
	}
}

// WithAffine marks a Euclidean geometry as affine.
func WithAffine() Option {
	return func(o *options) { o.affine = true }
}

// WithGeodesicMovement selects between geodesic (true, default) and Lie
// group movement in non-isotropic geometries.
func WithGeodesicMovement(on bool) Option {
	return func(o *options) { o.geodesicMovement = on }
}

// WithEmbeddedShiftChoice sets when embedded shifting is used for camera
// and animation moves.
func WithEmbeddedShiftChoice(c EmbeddedShiftChoice) Option {
	return func(o *options) { o.embeddedChoice = c }
}
