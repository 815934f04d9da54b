// Package schedule turns parsed scenes into a day-by-day shooting schedule.
//
// Scheduling happens in two steps. GroupScenes keys every scene by its scene
// root (the leading digits of the heading, so "2", "2A" and "2B" share a set-up),
// location, and time of day, then orders the groups by numeric root, location,
// and time of day while keeping parse order inside each group. Allocate walks
// the flattened order and greedily places scenes on shooting days under a
// workday window, a daily hour cap, and a one-hour lunch break.
//
// The allocator is a deterministic heuristic rather than an optimizer: no
// scene is split across days, a scene longer than the remaining capacity rolls
// the day over, and nothing ever fails.
package schedule
