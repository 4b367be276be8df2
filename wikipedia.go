// Package wikipedia provides a client for retrieving and parsing articles
// from a MediaWiki-based web API such as Wikipedia. It fetches pages as
// structured JSON, exposes them as immutable Page values, and derives
// sanitized plain text and bounded summaries from their content.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., http/, goquery/, htmltomarkdown/).
package wikipedia
