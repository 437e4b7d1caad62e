// Package loader extracts documents from raw source files.
//
// A Loader dispatches on the normalized file extension to a registered
// Parser, then enriches every resulting document with provenance
// metadata: the content digest of the whole file, its name, type,
// parent folder, and derived category. Loaders are stateless
// transformers; their only side effect is reading the file.
//
// New formats are supported by registering a Parser for the extension,
// never by branching in callers.
package loader
