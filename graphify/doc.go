// Package graphify decomposes hyper-edges of a detector error model into
// chains of graphlike edges, producing a model a pairwise-matching (MWPM)
// decoder can consume.
//
// Pipeline (all stages pure, input model never mutated):
//
//	Classify  — split mechanisms into graphlike passthrough vs hyper-edges
//	Order     — deterministic permutation of a hyper-edge's detectors
//	            (ById, or ByCoordinate greedy nearest-neighbor path)
//	Solve     — per-link probability q with the same net odd-parity rate
//	            as the original hyper-edge: q = ½·(1−(1−2p)^(1/m))
//	Decompose — k detectors → k−1 links along the permutation; the
//	            hyper-edge's observables ride entirely on the first link
//	Merge     — identical (detector set, observable set) mechanisms fold
//	            into one via the independent-XOR rule a+b−2ab
//	Assemble  — revalidate every output invariant, copy counts verbatim
//
// Entry point: Transform. Individual stages are exported for reuse and
// testing; all are deterministic, so the same model and Options always
// yield the same output, regardless of MaxParallel.
//
// Attaching a hyper-edge's observables to a single chain link reproduces
// the correct marginal flip rate but not the joint correlation of the
// original mechanism; that correlation is not representable by
// independent graphlike edges. This is the standard approximation for
// this transform, documented here rather than silently altered.
package graphify
