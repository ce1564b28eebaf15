// Package diagutil implements the AMBIENT STACK's optional trace output:
// a package-level Verbose flag gating a Logf helper, grounded on the
// teacher's optimizer.go, which guards inline fmt.Fprintf(os.Stderr, ...)
// calls behind a package-level VerboseMode bool. Unlike VerboseMode,
// Verbose lives in its own package so namespace, types and constant can
// all import it without importing each other or the driver.
//
// The pure constructors in types/expr/stmt/constant never call Logf
// themselves — they stay side-effect free and report failure through
// *diag.Error instead. Logf is for the side-effecting operations around
// them: completing a forward-declared tag, installing a tag into a
// namespace, folding a division that comes back fail-typed.
package diagutil

import (
	"fmt"
	"os"
)

// Verbose gates Logf's output. The driver sets it from a -v flag; library
// code never sets it itself.
var Verbose bool

// Logf writes a trace line to stderr when Verbose is set, a no-op
// otherwise.
func Logf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(os.Stderr, format, args...)
}
