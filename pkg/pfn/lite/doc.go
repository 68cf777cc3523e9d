// Package lite evaluates a partial function concurrently over a channel of
// inputs with minimal configuration.
//
// Run fans the inputs out to a fixed number of workers sharing one
// function; a compiled pfn.PartialFn needs no locking for this. Collect
// keeps only matched values, and Finally folds outcomes into plain values.
// On cancellation the workers stop and, unless disabled with
// core.WithProcessOptions, drain the remaining input.
package lite
