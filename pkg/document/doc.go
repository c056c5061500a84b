// Package document reads declarative layout documents and writes the
// resulting layouts.
//
// A document describes a viewport and a tree of nodes. Each node becomes a
// [box.Box]; nodes with children (or an explicit orientation) own a
// [flex.Container]. Per-child attributes such as flex, grow and position are
// set on the node itself and apply within its parent's container.
//
// Documents are TOML or JSON, selected by file extension:
//
//	[viewport]
//	width = 800
//	height = 600
//
//	[root]
//	name = "window"
//	orientation = "horizontal"
//	spacing = 8
//
//	[[root.children]]
//	name = "sidebar"
//	width = 200
//
//	[[root.children]]
//	name = "content"
//	flex = true
//	grow = 2
//
// A computed [Layout] lists every box with its rectangle in viewport
// coordinates. It is always serialized as JSON.
package document
