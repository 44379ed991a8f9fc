// Package syncer provides the generic engine that mirrors one upstream SRD
// resource into the local relational database.
//
// A resource is described once by a Descriptor: the remote collection name,
// the target parent table, the natural-key column, a pure mapping function
// from detail document to flat record, and zero or more child-table
// descriptors for nested collections embedded in the detail payload.
//
// # Sync paths
//
// Resources without child tables take the generic path: every item's
// fetch+map+upsert runs independently inside a bounded worker group, and a
// single parameterized upsert is its own atomic write.
//
// Resources with child tables take the enriched path: items are processed
// strictly in index order, and each item's parent upsert plus the
// full-snapshot replacement of every child table runs inside one database
// transaction. The first failing item rolls back and aborts the remaining
// items; earlier items stay committed.
//
// # Idempotency
//
// The upstream `index` field is the natural key. Re-running a sync against an
// unchanged upstream converges to identical rows: parents are updated in
// place via ON-CONFLICT upserts and child sets are replaced wholesale, so
// removals upstream propagate on the next run.
package syncer
