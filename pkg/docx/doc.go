// Package docx reads and writes the subset of WordprocessingML that CV
// templates use: paragraphs, runs and tables, with run-level formatting.
//
// Parsing keeps every element it does not model as raw XML so a document can
// be parsed, edited and written back without losing numbering definitions,
// section layout or embedded content. Writing emits prefixed OOXML directly;
// the root element's namespace declarations are taken verbatim from the
// source document.
package docx
