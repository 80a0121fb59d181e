// Package syncmap offers a lightweight, generic, concurrency-safe registry
// map guarded by a sync.RWMutex.  The service package uses it to index MCP
// tool entries by name; it is intentionally minimal and tuned to that need.
package syncmap
