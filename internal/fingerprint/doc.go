// Package fingerprint computes cache-busting version tokens.
//
// A Generator hashes file content read through an afero.Fs rooted at the web
// root. A Cache memoizes tokens per key for the life of the process, and a
// Versioner composes the two so that repeated renders hash each file once.
//
// Tokens are restricted to [A-Za-z0-9_-] so they can be appended to a query
// string without escaping.
package fingerprint
