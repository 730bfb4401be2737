package store

// Package store implements the item collection: adding, editing, deleting
// and pruning items, display ordering, and durable persistence. Every change
// is written to the backend before it becomes visible in memory, so a failed
// write leaves the collection as it was.
