// SPDX-License-Identifier: MIT

package matrix

import (
	"log/slog"
	"sync/atomic"
)

var (
	logger    atomic.Pointer[slog.Logger]
	singulars atomic.Uint64
)

// SetLogger installs the logger used for numerical warnings.
// A nil logger restores slog.Default().
func SetLogger(l *slog.Logger) {
	logger.Store(l)
}

func log() *slog.Logger {
	if l := logger.Load(); l != nil {
		return l
	}
	return slog.Default()
}

// SingularInversions returns how many times Inverse or Inverse3 met a
// singular input since process start.
func SingularInversions() uint64 { return singulars.Load() }

func warnSingular(op string, T Matrix) {
	singulars.Add(1)
	log().Warn("inverting a singular matrix", "op", op, "matrix", T)
}
