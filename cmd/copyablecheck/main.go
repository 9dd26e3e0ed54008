// Command copyablecheck reports logging arguments whose types force eager
// formatting in a deferred-logging pipeline.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"pkt.systems/copyable/copyablecheck"
)

func main() {
	singlechecker.Main(copyablecheck.Analyzer)
}
