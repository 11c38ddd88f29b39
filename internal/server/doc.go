// Package server binds facade routers to listeners and runs them.
//
// [Start] serves one facade and returns a [Handle] used to stop it; any
// number of facades may run in one process. [NewServer] builds the process
// runner used by cmd/server: it serves the facade and an optional metrics
// listener until a stop signal arrives, then shuts both down gracefully.
package server
