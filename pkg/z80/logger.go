package z80

import "log"

// StdLogger is the default Logger, backed by the standard library's log
// package — the teacher corpus (cmd/z80opt/main.go, pkg/search/worker.go)
// never reaches for a structured logging library, writing progress
// straight to fmt/stdout instead, so the ambient logging concern here is
// carried the same way: no framework, just the standard library, behind
// the one-method interface spec.md §6.3 asks for.
type StdLogger struct{}

func (StdLogger) Printf(format string, args ...any) {
	log.Printf(format, args...)
}

// DiscardLogger drops every message; useful for tests and for
// conformance sweeps that expect IM 0/1 advisories as routine noise.
type DiscardLogger struct{}

func (DiscardLogger) Printf(string, ...any) {}
