// Package hypergraphify turns detector error models with hyper-edges —
// error mechanisms that flip three or more detectors at once — into
// equivalent graphlike models, where every mechanism flips at most two
// detectors, as required by Minimum-Weight-Perfect-Matching decoders.
//
// 🚀 What is hypergraphify?
//
//	A deterministic, pure-Go transformation pipeline:
//		• dem/      — DetectorErrorModel value types + the textual
//		  `error(p) D… L…` format boundary (parse & print)
//		• graphify/ — the core engine: hyper-edge classification, chain
//		  decomposition with XOR-consistent per-link probabilities,
//		  duplicate-edge merging, and output assembly
//		• verify/   — structural verification of an (original,
//		  transformed) model pair
//		• cmd/hypergraphify — file-to-file CLI over the same pipeline
//
// ✨ Why hypergraphify?
//
//   - Deterministic – the same input model and options always produce
//     the same output, independent of map iteration or goroutine order
//   - Honest math – per-link probabilities solve the odd-parity identity
//     exactly; merging follows the independent-XOR rule a+b−2ab
//   - Pure values – the input model is never mutated; the transform is a
//     single stateless call
//
// Quick ASCII example — one hyper-edge becomes a chain:
//
//	error(0.1) D0 D1 D2      D0───D1───D2
//	                    ⇒    two links, q ≈ 0.05279 each
//
// Start with graphify.Transform, or run
//
//	hypergraphify transform in.dem -o out.dem
package hypergraphify
