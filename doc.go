// doc.go: package documentation for xgx-fault
//
// Package fault builds layered error chains that carry developer-facing
// (internal) messages, user-facing (public) messages, key/value context, a
// call-site origin and an optional code, and folds that information back out
// of arbitrarily deep, possibly branching chains.
//
// It is designed to be:
//   - Ergonomic at call sites (create + decorate in one call)
//   - Interoperable with the stdlib (errors.Is/As, errors.Join, fmt.Formatter)
//   - Total: no operation here fails or panics on malformed input
//
// # Building Chains
//
// A Layer is one node. It optionally wraps a previous cause. Factories create a
// Layer and apply Wrappers to it:
//
//	err := fault.New("query users",
//	    fault.WithCode(500),
//	    fault.WithField("table", "users"),
//	    fault.WithOrigin(),
//	)
//	err = fault.Wrap(err,
//	    fault.WithInternal("load dashboard"),
//	    fault.WithPublic("The dashboard is unavailable."),
//	)
//
// err.Error() == "load dashboard: query users".
//
// Several independent failures fan in through Combine, which wraps them in an
// Aggregate:
//
//	err := fault.Combine([]error{errA, errB}, fault.WithInternal("sync failed"))
//
// # Reading Chains
//
//	+---------------------+---------------------------------------------------+
//	| Function            | Result                                            |
//	+---------------------+---------------------------------------------------+
//	| CodeOf              | code of the newest layer that has one             |
//	| ContextOf, FieldsOf | merged context; newer layers win on collision     |
//	| Internals           | every internal message, newest first              |
//	| PublicMessages      | every public message, newest first                |
//	| UserMessage         | public messages joined with " "                   |
//	| Origins             | distinct origins (file:line), newest first        |
//	| Snapshot            | all of the above in one Report                    |
//	+---------------------+---------------------------------------------------+
//
// # Traversal Order
//
// Walk is depth-first and newest-first, and visits each distinct error once
// even if it is reachable along several paths. Children of an aggregate
// (Unwrap() []error) are visited last-declared first; a previous cause
// (Unwrap() error) is visited only after everything already pending.
//
// # Concurrency
//
// Layers are mutable until handed off and carry no locks. Build a chain, then
// read it; do not mutate a Layer while another goroutine reads the chain.
//
// # Logging
//
// The core performs no I/O. See sub-package faultlog for zerolog fields.
package fault
