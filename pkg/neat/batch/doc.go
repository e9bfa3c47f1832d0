// Package batch runs independent operations concurrently and waits for all
// of them to settle. There is no short-circuit on first failure and no
// cancellation of siblings; every operation runs to completion and the
// outcome of each is reported at its input index.
package batch
