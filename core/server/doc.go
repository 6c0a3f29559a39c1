// Package server defines the HTTP server settings shared by serve mode and
// the remote-selection logic of the CLI.
//
// Config carries the listen port, the API key the auth middleware enforces,
// and which remote the comparison targets. RemoteGoogle and RemoteS3 are the
// valid remote names; IsValidRemote guards against typos before a scanner is
// built. Startup happens in cmd/start.go, not here.
package server
