// Package layout computes the geometry of annotation tracks: which vertical
// lane each feature occupies, how features merge when detail is collapsed,
// and how much vertical space a track consumes for a given view window.
//
// The engine is a pure function: [Compute] takes items, a view window, a
// display mode, a lane policy and sizing parameters, and returns a fresh
// [Result]. Nothing is cached between calls; recomputing for a new zoom
// window is cheap (O(n log n) for merging, O(n·lanes) for first-fit) and
// calling twice with identical inputs yields identical output.
//
// Two display modes exist:
//
//   - [ModeFull]: every item gets a lane. With [PolicyFirstFit] items are
//     packed greedily into the lowest free lane (first-fit interval
//     partitioning, optimal in lane count for ascending-start input). With
//     [PolicyDedicated] each item owns the lane equal to its input index,
//     the convention for tracks that give one row per logical entity
//     (one ligand, one domain accession).
//
//   - [ModeCollapse]: all spans of all items are merged into the minimal set
//     of disjoint regions, where overlapping or 1-unit-adjacent spans fuse,
//     and rendered as a single row.
package layout
