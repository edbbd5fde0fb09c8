// Package excel adapts the excelize library to the core's driven
// ports: a SessionSource that reads the Sessionize export, and a
// WorkbookWriter that replays layout instructions into a formatted
// .xlsx workbook.
package excel
