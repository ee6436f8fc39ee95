package distribution

import (
	"sync/atomic"

	"github.com/mrc-ide/mcstate2/internal/logger"
)

// The samplers run under one of two error-reporting backends. The
// default surfaces validation failures as structured errors to the
// caller. Trap mode mirrors execution targets with no stack to
// unwind: the failure is reported through the logger and the process
// aborts unrecoverably.

var trapMode atomic.Bool

// SetTrap selects the report-and-abort backend. Selected once at
// configuration time, not per call.
func SetTrap(on bool) {
	trapMode.Store(on)
}

// TrapEnabled reports whether the report-and-abort backend is active.
func TrapEnabled() bool {
	return trapMode.Load()
}

// fail routes a validation failure through the active backend. Under
// the default backend it returns err for the caller to handle; under
// trap mode it does not return.
func fail(err error) error {
	if trapMode.Load() {
		logger.Log().Fatal().Err(err).Msg("unrecoverable parameter error")
	}
	return err
}
