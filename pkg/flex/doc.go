// Package flex implements a single-line flex distribution layout.
//
// # Overview
//
// A [Container] owns an ordered list of children and lays them out along one
// axis. The main axis is called longitudinal, the perpendicular one lateral.
// A [Horizontal] container maps longitudinal to width and lateral to height; a
// [Vertical] container maps them the other way around. Both orientations run
// the same algorithm through a per-child axis adapter.
//
// # Two Passes
//
// Layout follows the measure/arrange protocol used by retained-mode UI
// toolkits:
//
//  1. [Container.Measure] receives the available size, measures every child,
//     distributes the flexible space and re-measures in-flow children at
//     their share. It returns the size the container wants.
//  2. [Container.Arrange] receives the final size and commits a rectangle on
//     every child without measuring again.
//
// # Distribution
//
// Children that are not flex-marked keep their desired longitudinal size.
// When at least one in-flow child is flex-marked, the space left after the
// fixed children is shared among flex children proportionally to their
// grow weight. When no child is flexible, every in-flow child is scaled by the
// same factor so that the row exactly fills the available space, shrinking on
// overflow and growing on underflow.
//
// Absolutely positioned children take no part in the flow: they are measured
// and arranged against the full content size, at the content origin, and do
// not advance the main-axis cursor.
//
// # Host Elements
//
// The package does not own elements. Anything implementing [Element] can be
// added to a container; per-child attributes (flex, grow, position,
// skip-measure, cross alignment) live on the [Child] record returned by
// [Container.Add]. Elements may implement [Aligner] to provide their own cross
// alignment when the child attribute is left at [AlignAuto].
//
// Containers are not safe for concurrent use. Measure and Arrange perform no
// mutation outside the child rectangles they commit.
package flex
