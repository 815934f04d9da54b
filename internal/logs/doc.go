// Package logs reads back the JSON log file written under the configured log
// directory.
//
// Tail returns the last N lines or everything after a byte offset, optionally
// waiting for new lines to arrive, so `reelplan logs --follow` can poll with
// bounded memory. ParseEntry and Filter turn those lines into records that
// can be narrowed to one run id or a minimum level.
package logs
