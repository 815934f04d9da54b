// Package preflight provides readiness checks for the filesystem paths and
// external services reelplan depends on.
//
// The CLI "reelplan doctor" command runs them all and prints one line per
// check. The LLM check only runs when an API key is configured; without one,
// "reelplan ask" falls back to retrieval-only answers and nothing needs to be
// reachable.
package preflight
