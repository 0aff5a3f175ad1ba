// Package layoutfile reads and writes component geometry documents.
//
// A document is an ordered list of named components. TOML is the primary
// format; YAML and JSON are accepted and selected by file extension:
//
//	[[components]]
//	name = "header"
//	sizing_mode = "border-box"
//	position = { x = 0, y = 0 }
//	size = { width = 80, height = 3 }
//	padding = { top = 1, right = 1, bottom = 1, left = 1 }
//
// Only persisted geometry is stored; component IDs and bounds are runtime
// data, recomputed when a document is built into a Set.
package layoutfile
