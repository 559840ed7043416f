// Package complexo is the algorithmic core of a system that derives
// asymptotic running-time and space bounds for procedural source code
// by combining static program analysis with symbolic recurrence
// solving, numerical refinement, and runtime-calibrated constant
// factors.
//
// A handful of subsystems form the hard engineering, one top-level
// package per concern:
//
//	expr/classify   — immutable complexity-expression algebra,
//	                  simplification, classification, Big-O rendering
//	recurrence/     — recurrence relation models (divide-and-conquer,
//	                  linear, mutual-recursion folding)
//	theorem/        — Master Theorem, Akra-Bazzi, and linear
//	                  characteristic-polynomial solvers
//	refine/         — slack optimization, perturbation expansion,
//	                  induction verification, confidence scoring
//	bench/curvefit/ — micro-benchmark runner and curve-fitting
//	calibstore      — verifier, with a persistent calibration store
//
// Everything else (variable, errs, hwprofile, progress, cmd/complexo)
// supports those four. See DESIGN.md for the grounding behind each
// package's choices.
//
//	go get github.com/complexo-io/complexo
package complexo
