// Package store persists pipeline runs in SQLite.
//
// Each run records the input it was built from, summary counts for listing,
// and the full artifacts (scenes, schedule, call sheets, props) as JSON so a
// past breakdown can be shown, queried, or re-exported without re-parsing.
// Runs are keyed by UUID; commands accept any unique ID prefix.
//
// Schema changes ship as numbered files under migrations/ and are applied in
// order when the store is opened.
package store
