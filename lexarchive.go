// Package lexarchive provides an incremental harvester for dictionary entry
// pages. It checks whether a page is already archived and, if not, fetches
// it, slices out the section that starts at a named anchor, and stores the
// fragment in a local key/value archive.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., sqlite/, goquery/, rod/).
package lexarchive
