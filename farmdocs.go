// Package farmdocs provides a local search engine for render-farm
// documentation. It walks an on-disk corpus of HTML pages, extracts and
// normalizes their content, indexes it into SQLite with an FTS5 full-text
// projection, and serves ranked keyword queries with highlighted excerpts.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/).
package farmdocs
