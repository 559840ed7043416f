package main

import (
	"testing"

	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/methodtable"
	"github.com/complexo-io/complexo/variable"
)

func TestRunAnalyzeReportsUnlinkedFrontEnd(t *testing.T) {
	frontEnd = nil
	if err := runAnalyze([]string{"./somefile.go"}); err != nil {
		t.Fatalf("runAnalyze returned unexpected error: %v", err)
	}
}

func TestRunAnalyzeRequiresPath(t *testing.T) {
	frontEnd = nil
	if err := runAnalyze(nil); err == nil {
		t.Fatal("expected an error when no path is given")
	}
}

func TestRunAnalyzeUsesLinkedFrontEnd(t *testing.T) {
	prev := frontEnd
	defer func() { frontEnd = prev }()

	frontEnd = stubFrontEnd{result: "O(n log n)"}
	if err := runAnalyze([]string{"./somefile.go"}); err != nil {
		t.Fatalf("runAnalyze returned unexpected error: %v", err)
	}
}

func TestRunAnalyzeFlagsTableEntriesNeedingReview(t *testing.T) {
	prevFrontEnd, prevTable := frontEnd, libraryTable
	defer func() { frontEnd, libraryTable = prevFrontEnd, prevTable }()

	frontEnd = stubFrontEnd{result: "O(n)"}
	libraryTable = methodtable.Table{
		{TypeName: "Cache", MethodName: "Evict"}: {
			Expression: expr.NewConstant(1),
			Source:     methodtable.Source{Kind: methodtable.SourceHeuristic},
		},
		{TypeName: "Vector", MethodName: "Append"}: {
			Expression: expr.NewLinear(1, variable.New("n", variable.KindInputSize)),
			Source:     methodtable.Source{Kind: methodtable.SourceDocumented, IsAmortized: true},
		},
	}

	if err := runAnalyze([]string{"./somefile.go"}); err != nil {
		t.Fatalf("runAnalyze returned unexpected error: %v", err)
	}
}

type stubFrontEnd struct {
	result string
	err    error
}

func (s stubFrontEnd) Analyze(path string) (string, error) {
	return s.result, s.err
}
