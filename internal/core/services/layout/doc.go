// Package layout renders record sets into grid-drawing instruction
// streams. Three strategies share one contract:
//
//   - Summary: flat table, one row per record
//   - Print: 12-column card blocks for Letter portrait printing
//   - Mobile: 2-column vertical stack sized for a phone viewport
//
// Strategies are target-agnostic: they emit domain.DrawInstruction
// values and never touch a workbook backend. Every write and merge
// passes through a claim tracker, so a colliding instruction is a
// caught programming error rather than a silently corrupted sheet.
package layout
