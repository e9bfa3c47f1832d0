// Package future provides a minimal settled-once deferred value. It exists
// so the converter and collector can treat "already running" work the same
// as plain function calls; any other type satisfying neat.Awaitable works
// in its place.
package future
