// Command complexo is the CLI peripheral for the complexity-analysis
// core: analyze, version, and probe. It is a thin driver — it imports
// the core packages but nothing in the core imports this package.
package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "analyze":
		err = runAnalyze(os.Args[2:])
	case "version":
		runVersion()
	case "probe":
		err = runProbe(os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, "complexo:", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "usage: complexo <analyze|version|probe> [args]")
}
