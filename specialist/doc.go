// Package specialist wraps one domain specialist behind an Invoker: it
// combines the specialist's instruction context with the full conversation
// history, performs a single synchronous generation call, and appends the
// resulting answer to the conversation. Appends are all-or-nothing; a failed
// generation leaves the history untouched. The synthesizer is simply an
// Invoker bound to the reserved synthesizer identifier.
package specialist
