package util

import (
	"errors"
	"strings"

	"github.com/fatih/color"
	"github.com/mitchellh/go-wordwrap"
	"github.com/spf13/cobra"

	"github.com/cfdops/caseflow/pkg/models"
)

var (
	red    = color.New(color.FgRed)
	yellow = color.New(color.FgYellow)
)

const (
	errorPrefix = "Error: "
	hintPrefix  = "Hint:  "
	wrapWidth   = 100
)

// PrintError renders an error with a colored prefix, wrapped and indented,
// followed by the error's hint when it carries one.
func PrintError(cmd *cobra.Command, err error) {
	if err == nil {
		return
	}
	printPrefixed(cmd, red, errorPrefix, err.Error())

	var hinted models.HasHint
	if errors.As(err, &hinted) && hinted.Hint() != "" {
		printPrefixed(cmd, yellow, hintPrefix, hinted.Hint())
	}
}

func printPrefixed(cmd *cobra.Command, c *color.Color, prefix, msg string) {
	width := uint(wrapWidth - len(prefix))
	for i, line := range strings.Split(wordwrap.WrapString(msg, width), "\n") {
		if i == 0 {
			c.Fprint(cmd.ErrOrStderr(), prefix)
		} else {
			cmd.PrintErr(strings.Repeat(" ", len(prefix)))
		}
		cmd.PrintErrln(line)
	}
}
