package main

import (
	"github.com/cfdops/caseflow/cmd/watch"
)

func main() {
	watch.Execute()
}
