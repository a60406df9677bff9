package state

import (
	"time"

	"pdfhtml/resolve"
)

// newLocalEnv creates environment with diagnostics collector ready to be
// attached to the program logger.
func newLocalEnv() *LocalEnv {
	return &LocalEnv{
		start: time.Now(),
		Diag:  resolve.NewDiagnostics(),
	}
}
