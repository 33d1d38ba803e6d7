package main

import (
	"github.com/cfdops/caseflow/cmd/cli"
)

func main() {
	cli.Execute()
}
