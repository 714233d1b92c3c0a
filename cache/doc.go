// Package cache defines the key-value cache contract shared by every engine
// in the data-access layer, the namespaced key builders that keep entities
// from colliding in that keyspace, and the generic cache-aside helper used to
// wrap expensive aggregate reads.
//
// The cache is a soft dependency everywhere: a failed read falls back to the
// relational store, and a failed write after a successful read is logged and
// swallowed. Entries are only ever expired by TTL; no engine invalidates on
// write. Services that want stronger consistency can delete an entity's whole
// namespace via Store.DeleteByPrefix and EntityPrefix, but nothing in this
// module does so implicitly.
//
// Concrete stores live in internal/cacheinfra: a Redis-backed store for
// deployments where many workers share one cache, and an in-process store for
// single-binary setups and tests.
package cache
