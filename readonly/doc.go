// Package readonly converts any pgm implementation into a transitively
// immutable view without copying data.
//
// 🚀 What it does
//
//	Every constructor stores the base reference and nothing else. Reads delegate
//	to the base and wrap whatever comes back (elements, indices, sequences) in
//	the matching read-only adapter before returning it. Writes return
//	ErrReadOnly and never reach the base.
//
// Adapters
//
//	NewGraph / NewIndexableGraph  graph-level views
//	NewVertex / NewEdge / NewElement  element views, dispatched on Kind()
//	NewIndex  index views, dispatched on Kind() and Type()
//	Seq       lazy per-item wrapping of a sequence
//
// Guarantees
//
//   - No caching: each read re-delegates and re-wraps, so a view always
//     reflects the current state of its base.
//   - Views are comparable values: two views of the same base element are ==.
//   - Wrapping a view returns it unchanged (see IsReadOnly).
//   - Property values that are elements or indices come back as views.
//   - Indices() maps the base sequence lazily; nothing is materialized up front.
//   - No locking is added; concurrency is whatever the base provides.
package readonly
