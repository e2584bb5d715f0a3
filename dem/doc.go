// Package dem defines the in-memory DetectorErrorModel value types and
// the textual boundary of the line-oriented detector-error-model format.
//
// A Model is an ordered sequence of error Mechanisms plus the declared
// detector and observable counts and optional per-detector coordinates.
// Each Mechanism fires independently with its Probability; when it fires
// it toggles the syndrome bit of every listed detector and XORs every
// listed logical observable.
//
// Mechanisms are canonical values: detector and observable ids are kept
// sorted ascending with no duplicates, so two mechanisms touching the
// same sets compare equal field-by-field regardless of how they were
// built. Models are never mutated by the rest of the module — transforms
// always produce fresh values.
//
// The text format (one instruction per line, `#` starts a comment):
//
//	error(0.125) D0 D1 L0
//	detector(1, 2) D0
//	detector D1
//	logical_observable L0
//
// Parse and Model.WriteTo are the only places in the module that touch
// this format; everything else works on the in-memory values.
package dem
