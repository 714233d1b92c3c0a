// Package records implements the generic read engines shared by every entity
// service: keyset (cursor) pagination, a filtered variant of it, and a
// layered search engine. One engine serves many entities; each entity service
// declares a Descriptor (and, for search, a SearchSpec) describing its cursor
// column, primary-key accessor and searchable fields, and the engines have no
// knowledge of any specific entity's shape beyond that declaration.
//
// Pagination is keyset-based: a page is the first N rows with a cursor column
// value strictly greater than the last one seen, ordered ascending. The
// cursor column must be strictly increasing and unique (the primary key in
// practice) so pages stay stable under concurrent inserts. Pages of the
// unfiltered pager are cached for a fixed TTL; a hit returns the prior
// snapshot even if rows changed since, which is an accepted staleness window.
//
// All engines are read-only against the store and safe for concurrent use.
package records
