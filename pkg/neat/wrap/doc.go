// Package wrap turns ordinary fallible functions into Outcome-returning
// ones. Use it at module boundaries where callers should receive outcomes
// without writing the catch.Do call at every site.
package wrap
