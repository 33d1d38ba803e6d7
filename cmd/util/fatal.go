package util

import (
	"os"

	"github.com/spf13/cobra"
)

// Fatal reports a terminal CLI failure. Swappable so tests can observe the
// error instead of exiting the test binary.
var Fatal = fatalError

func fatalError(cmd *cobra.Command, err error, code int) {
	PrintError(cmd, err)
	os.Exit(code)
}

// FakeFatalErrorHandler prints the error like the real handler but does not
// exit. Installed over Fatal in test setup.
func FakeFatalErrorHandler(cmd *cobra.Command, err error, _ int) {
	PrintError(cmd, err)
}
