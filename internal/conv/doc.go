// Package conv provides small helpers to coerce arbitrary Go values into the
// string form the sandbox stores.  The primary helper String performs a
// best-effort conversion with a JSON fallback for composite values, which is
// sufficient when re-seeding the sandbox from heterogeneous item lists.
package conv
