// Package pagesafe fetches web pages, extracts their readable text, and
// protects that text with a passphrase-derived cipher for storage.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, sqlite/).
package pagesafe
