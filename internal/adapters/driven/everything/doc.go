// Package everything drives the Everything search index through its
// command-line client (es.exe, or es under WSL).
//
// The adapter is a strictly linear pipeline per call: a request compiles
// to an ordered argv token list, one subprocess runs under a deadline,
// raw output is decoded best-effort, and CSV text parses into ordered
// records. Nothing persists between calls except the validated
// executable path held by the Client.
//
// The engine's own query syntax (size:, ext:, datemodified: filters and
// their value grammar) passes through verbatim; this package only owns
// token emission, process lifecycle and output parsing.
package everything
