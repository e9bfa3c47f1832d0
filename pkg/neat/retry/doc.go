// Package retry drives a single operation through repeated attempts with
// backoff between failures. Success returns immediately; otherwise the
// attempt budget (MaxRetries + 1 total attempts) and the ShouldRetry
// predicate bound the loop. Attempts are strictly sequential: attempt n+1
// never starts before attempt n has fully settled and the continue
// decision is made.
package retry
