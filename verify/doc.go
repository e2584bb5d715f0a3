// Package verify performs structural checks on an (original,
// transformed) detector-error-model pair: non-emptiness, the graphlike
// property of the result, count preservation, and observable coverage.
// It proves structure, not logical equivalence of the two models.
package verify
