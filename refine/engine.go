package refine

import (
	"github.com/complexo-io/complexo/expr"
	"github.com/complexo-io/complexo/theorem"
	"github.com/complexo-io/complexo/variable"
)

// Engine orchestrates the five-stage refinement pipeline for one
// recurrence. NonRecursiveWork is g(n) for a divide-form recurrence
// (used by the perturbation stage to re-derive an Akra-Bazzi integral
// at a snapped integer exponent); it is nil for a linear recurrence,
// where that stage is a no-op.
type Engine struct {
	Var              variable.Variable
	Work             RecurrenceWork
	NonRecursiveWork expr.Expression
	Applicability    theorem.TheoremApplicability
}

// Verify runs all five refinement stages in fixed order and returns
// the aggregated Result.
func (e Engine) Verify() Result {
	var stages []StageResult

	original, baseConfidence, regularityVerified := initialSolution(e.Applicability)
	stages = append(stages, StageResult{Name: "initial", Candidate: original, Confidence: baseConfidence})

	slacked, slackDiag := e.slackOptimize(original)
	stages = append(stages, StageResult{Name: "slack", Candidate: slacked, Diagnostics: slackDiag})

	perturbed, perturbDiag, boundaryConfidence := e.perturbationExpand(slacked)
	stages = append(stages, StageResult{Name: "perturbation", Candidate: perturbed, Diagnostics: perturbDiag, Confidence: boundaryConfidence})

	induction := e.verifyInduction(perturbed, BoundTight)
	stages = append(stages, StageResult{Name: "induction", Candidate: perturbed, Diagnostics: induction.Diagnostics})

	classConfidence := classificationConfidence(perturbed, e.Var)
	overall := aggregateConfidence(baseConfidence*boundaryConfidence, regularityFactor(regularityVerified), inductionFactor(induction), classConfidence)

	var diagnostics []string
	diagnostics = append(diagnostics, slackDiag...)
	diagnostics = append(diagnostics, perturbDiag...)
	diagnostics = append(diagnostics, induction.Diagnostics...)

	return Result{
		Original:       original,
		Refined:        perturbed,
		Stages:         stages,
		Verification:   induction,
		Confidence:     overall,
		ReviewRequired: overall < 0.5,
		Diagnostics:    diagnostics,
	}
}

// VerifyBound runs only induction verification (stage 4) and
// confidence scoring (stage 5) against a caller-supplied candidate,
// checked in the requested bound direction.
func (e Engine) VerifyBound(candidate expr.Expression, kind BoundKind) Result {
	induction := e.verifyInduction(candidate, kind)
	classConfidence := classificationConfidence(candidate, e.Var)
	overall := aggregateConfidence(1, 1, inductionFactor(induction), classConfidence)
	return Result{
		Refined:        candidate,
		Stages:         []StageResult{{Name: "induction", Candidate: candidate, Diagnostics: induction.Diagnostics}},
		Verification:   induction,
		Confidence:     overall,
		ReviewRequired: overall < 0.5,
		Diagnostics:    induction.Diagnostics,
	}
}
