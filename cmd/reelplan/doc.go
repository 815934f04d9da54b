// Package main hosts the reelplan CLI entrypoint and command graph.
//
// The Cobra command tree reads a screenplay from a text file or stdin, runs
// the breakdown pipeline, and renders scenes, schedules, call sheets, and
// cast reports as tables, JSON, or YAML. Runs are saved to the local store so
// later commands (runs, ask) can work without re-parsing.
//
// Keep this package lean: the heavy lifting lives in internal packages and is
// only surfaced here through commands and flags.
package main
