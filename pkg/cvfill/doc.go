// Package cvfill fills CV .docx templates from structured candidate records.
//
// A record flows through three stages: ValidateRecord normalizes raw
// extraction output into a CandidateRecord, Resolve maps the record onto the
// template's placeholder vocabulary, and a Template render applies that
// mapping to the document, pruning sections and rows without data and
// restyling every touched run with the house typography.
package cvfill
