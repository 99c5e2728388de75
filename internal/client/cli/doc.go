// Package cli implements the interactive Jobly shell: a read–eval–print
// loop dispatching to command handlers for authentication, job browsing,
// the product catalog and the cart. Every scanned input line counts as
// user activity and feeds the session guard's idle-timeout machinery.
package cli
