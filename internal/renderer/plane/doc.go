// Package plane provides layered drawing surfaces composed onto a terminal.
//
// A Plane is a rectangular cell buffer with a position relative to its
// parent. Widgets draw into their own planes; Composite flattens the tree
// onto a Sink, the topmost plane winning each cell. Translating a plane
// translates its subtree, which is how pages scroll and hide.
//
// A Reader turns a plane row into an editable single-line input. The
// reader must be destroyed before its host plane.
package plane
