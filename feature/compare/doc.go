// Package compare wires two scanners to the matching engine and exposes the
// outcome as reports.
//
// The service has two entry points. Run scans both sides fresh and is what
// one-shot CLI invocations use. RunCached goes through the snapshot cache so
// serve mode can answer repeated requests without re-walking the filesystem
// or re-listing the remote service on every call.
//
// The feature registers two routes:
//
//	GET  /compare          run a comparison, ?threshold= overrides the default
//	POST /compare/refresh  drop the scan snapshot
//
// When a history store is available every finished run is persisted;
// persistence failures are logged and never fail the comparison.
package compare
