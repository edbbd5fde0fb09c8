// Package domain defines the core business entities for the run sheet
// generator.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - RawRow: One (talk, speaker) pairing as exported from Sessionize
//   - Record: The canonical pairing after normalisation
//   - RecordSet: An ordered, room- and view-homogeneous slice of records
//   - DrawInstruction: One grid-drawing step emitted by the layout engine
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
