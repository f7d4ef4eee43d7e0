// Package popscrape turns anime pop-up store announcement pages into
// marketing articles. It scrapes a page, extracts cleaned text, a ranked
// set of relevant images and structured facts (dates, store, novelty,
// character names), generates formatted HTML copy, and publishes the
// result to a CMS or a local document directory.
//
// This package contains domain types, interfaces and the pure extraction
// heuristics following Ben Johnson's Standard Package Layout.
// Implementations live in subdirectories named after their primary
// dependency (e.g., goquery/, sqlite/, gemini/).
package popscrape
