// Package htmladf converts HTML documents and fragments into trees
// conforming to the Atlassian Document Format (ADF) JSON schema. It maps a
// fixed subset of HTML tags onto ADF content types, enforces ADF's
// per-type nesting grammar, and reconciles loosely structured HTML nesting
// into a legal ADF document while preserving document order and text
// fidelity.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, bluemonday/).
package htmladf
