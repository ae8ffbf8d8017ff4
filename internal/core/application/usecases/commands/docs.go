// Package commands contains business operations that modify session state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent shape: a guard-validated
// command object plus a handler that runs the operation against the
// session store and the outbound ports.
//
// Operations with a slow outbound call (geocoding, routing, positioning)
// run in two phases: the first mutation registers the action and yields a
// generation token, the network call happens outside the session lock, and
// the second mutation applies the result only if the token is still
// current. A stale token means the user acted again in the meantime and
// the result is discarded.
package commands
