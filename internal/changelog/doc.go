// Package changelog implements the changelog merge and retention engine for
// shiplog.
//
// This package implements:
//   - Parsing of entry-delimited Markdown changelog documents
//   - Placeholder detection and validation
//   - Placeholder resolution into a dated, versioned release heading
//   - Entry redistribution between the current changelog and an archive
//     file under a configured retention count
//   - Blank-line-normalized serialization back to Markdown
//
// Documents are opaque outside their entry boundaries: entry bodies are
// never parsed for meaning, only relocated and reprefixed as whole blocks.
// All transforms are pure; file I/O happens only in the pipeline plugin.
package changelog
