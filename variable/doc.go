// Package variable defines the Variable symbol used throughout the
// complexity algebra: a name paired with a semantic Kind tag (input
// size, vertex count, edge count, ...), plus a small hashable Set type
// used to carry free-variable collections between expr and classify.
//
// Variables are immutable values. Equality is structural on Name+Kind;
// two Variables with the same name but different Kind are distinct
// (this lets a front-end distinguish, e.g., a string-length "n" from a
// vertex-count "n" in the same expression tree without renaming).
package variable
