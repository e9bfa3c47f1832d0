// Package catch converts fallible operations into Outcome values. It is the
// single capture point the wrap, batch and retry packages build on.
//
// Highlights:
// - Do: run a synchronous operation, get an Outcome back
// - Await: settle any neat.Awaitable into an Outcome
// - Async: start an operation concurrently, await the Outcome later
package catch
