// Package driven defines the interfaces the core depends on
// (driven ports, in hexagonal terms). Adapters under
// internal/adapters/driven implement them: the Excel reader and
// workbook, the speaker photo cache, and the config store.
//
// The core never imports an adapter; wiring happens in the CLI.
package driven
