// Package document holds the read-only line buffer of the file being viewed.
//
// A Document is built once, from a file or from raw lines, and is never
// modified afterwards. Lines are stored byte-for-byte with their trailing
// carriage returns and line feeds removed; no encoding is assumed.
package document
