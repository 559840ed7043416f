// Package curvefit selects the best-fit complexity class for a set of
// micro-benchmark results: per candidate class, transform input size
// to the predicted scaling factor, fit y = c·x_transformed through
// the origin, and score by R². The class with the highest R² wins;
// confidence combines that R², mean coefficient of variation across
// the input results, and a sample-count factor.
//
// Grounded on the teacher's matrix/ops package shape (validate shape,
// allocate, compute, return an error-wrapped result) applied to "one
// candidate class at a time" instead of "one matrix operation."
package curvefit
