// Package history persists comparison runs and serves them over HTTP.
//
// Every finished comparison is stored as a row in the comparison_runs table:
// the headline numbers become columns for cheap listings, and the full
// report is kept alongside as a JSON document. The feature registers two
// routes:
//
//	GET /history          recent runs, newest first
//	GET /history/:run_id  the full report document for one run
//
// The feature can be disabled through configuration, in which case nothing
// is persisted and the routes are not registered. It is also disabled
// automatically when no database connection is available, so a broken or
// absent database never blocks a comparison.
package history
