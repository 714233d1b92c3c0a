// Package sequence allocates the human-readable business identifiers
// (DOC-0042, PAT-0007, ...) assigned at record-creation time. They are
// independent of the store's primary keys and must stay unique within their
// prefix even when many request workers create records at once.
//
// The obvious implementation, scan the max existing identifier then increment
// and insert, is a read-modify-write race: two concurrent
// creations can read the same maximum and collide. This allocator instead
// draws from a dedicated per-prefix counter row bumped by a single atomic
// upsert-increment, so no two callers can ever see the same value. SeedFrom
// exists only to adopt pre-existing data: it raises the counter's floor to
// the highest legacy identifier once, and the raise itself is a conditional
// upsert so concurrent seeding cannot move the counter backwards.
package sequence
