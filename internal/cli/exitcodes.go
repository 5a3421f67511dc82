package cli

import (
	"github.com/yaklabco/mdlinkcheck/pkg/config"
	"github.com/yaklabco/mdlinkcheck/pkg/report"
)

// Exit codes for mdlinkcheck.
const (
	// ExitSuccess indicates successful execution with no issues.
	ExitSuccess = 0

	// ExitCheckErrors indicates the check completed but found errors.
	ExitCheckErrors = 1

	// ExitCheckWarnings indicates the check found warnings (when strict mode).
	ExitCheckWarnings = 2

	// ExitInvalidUsage indicates invalid command-line usage.
	ExitInvalidUsage = 64

	// ExitConfigError indicates configuration file errors.
	ExitConfigError = 65

	// ExitInternalError indicates an internal error.
	ExitInternalError = 70

	// ExitIOError indicates file I/O errors.
	ExitIOError = 74
)

// ExitCodeFromStats determines the exit code based on run stats and
// strict mode. Link-rot matches are advisory and never affect the code.
func ExitCodeFromStats(stats *report.Stats, strict bool) int {
	if stats == nil {
		return ExitSuccess
	}

	if stats.WarningsBySeverity[config.SeverityError] > 0 {
		return ExitCheckErrors
	}

	if strict && stats.WarningsBySeverity[config.SeverityWarning] > 0 {
		return ExitCheckWarnings
	}

	return ExitSuccess
}
