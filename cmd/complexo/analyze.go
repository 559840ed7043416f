package main

import (
	"flag"
	"fmt"
	"sort"

	"github.com/complexo-io/complexo/methodtable"
)

// FrontEnd is the narrow interface the external, out-of-scope source
// front-end would implement. The core and this CLI never depend on a
// concrete front-end; a real deployment wires frontEnd via a build-tag-
// guarded file that is absent from this tree.
type FrontEnd interface {
	Analyze(path string) (string, error)
}

// frontEnd is nil unless a build wires a concrete implementation in.
var frontEnd FrontEnd

// libraryTable is the library method table (spec.md §6) consumed
// alongside frontEnd: a second external collaborator, populated by
// whatever maintains the pre-populated per-type/method complexity data
// and wired in the same build-tag-guarded way. Nil unless a build
// wires a concrete Table in.
var libraryTable methodtable.Table

func runAnalyze(args []string) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	fs.Usage = func() { fmt.Println("usage: complexo analyze <path>") }
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("analyze: missing <path>")
	}
	path := fs.Arg(0)

	if frontEnd == nil {
		fmt.Printf("analyze: front-end not linked (requested path: %s)\n", path)
		return nil
	}

	result, err := frontEnd.Analyze(path)
	if err != nil {
		return err
	}
	fmt.Println(result)

	reportReviewRequired()
	return nil
}

// reportReviewRequired surfaces every library-method-table entry whose
// Source isn't authoritative enough to trust unexamined, so an analyze
// run calls out exactly which library complexity figures a human
// should double-check before relying on the overall estimate.
func reportReviewRequired() {
	if libraryTable == nil {
		return
	}
	keys := methodtable.NeedsReview(libraryTable)
	if len(keys) == 0 {
		return
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].TypeName != keys[j].TypeName {
			return keys[i].TypeName < keys[j].TypeName
		}
		return keys[i].MethodName < keys[j].MethodName
	})
	fmt.Println("needs review:")
	for _, k := range keys {
		ac, _ := libraryTable.Lookup(k.TypeName, k.MethodName)
		fmt.Printf("  %s.%s (%s): %s\n", k.TypeName, k.MethodName, ac.Source.Kind, ac.Source.Notes)
	}
}
