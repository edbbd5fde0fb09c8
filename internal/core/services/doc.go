// Package services implements the core run sheet pipeline: the record
// normaliser, the partitioner/sorter, palette assignment, and the
// builder that orchestrates them against the driven ports.
//
// Services are pure where possible: each stage consumes an
// immutable input and produces a new output. The only side effects
// are the builder's use of the image cache and workbook ports.
package services
