// Package pipeline turns screenplay text into a complete breakdown.
//
// Stages run strictly in order, each consuming the full output of the one
// before it: parse (normalize, segment, infer silent characters), props
// tagging, schedule allocation, call-sheet aggregation, and the cast report.
// Props tagging is the last consumer of scene action text; the buffers are
// dropped right after it. Every stage logs a start and a completion line tagged
// with the run id and stage name.
package pipeline
