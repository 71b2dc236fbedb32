// Package main hosts the convcheck CLI entrypoint and command graph.
//
// The Cobra command tree resolves configuration once, applies flag
// overrides, and hands explicit directory paths to the audit package. The
// report goes to stdout and diagnostics go to stderr, so the output of
// `convcheck check --format json` can be piped straight into other tools.
//
// Keep this package lean: new behaviour belongs in the internal packages and
// is surfaced here through commands or flags.
package main
