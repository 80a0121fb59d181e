// Package sandbox implements a small in-memory string map whose keys are the
// character-reversed form of their values.  It exists to exercise basic
// associative-container operations – insertion, deletion, ordering, filtering
// and case transformation – and is consumed directly by caller code such as
// the service and cmd packages.
package sandbox
