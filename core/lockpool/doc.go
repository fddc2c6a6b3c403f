// Package lockpool attaches locks to arbitrary objects by hashing their
// address into a fixed set of buckets.
//
// Each bucket keeps a list of lock entries guarded by a short-lived index
// mutex. A caller claims an entry under the index mutex and only then blocks
// on the entry's own lock, so long waits never stall lookups of unrelated
// pointers in the same bucket. Entries are allocated on first use and never
// freed; an entry whose usage count drops to zero is recycled for the next
// pointer that lands in its bucket.
//
// The bucket count is fixed by Indexing, which must happen before any
// concurrent Protect or lock traffic.
//
// File: core/lockpool/doc.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0
package lockpool
