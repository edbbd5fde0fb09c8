package services

import (
	"sort"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

// AssignColours maps each room class to a tab colour from the brand
// palette. Identifiers are sorted alphabetically and colours assigned
// by cyclic index, so the mapping is identical across runs and does
// not depend on input order. Repeated regenerations of one conference
// must colour tabs identically.
func AssignColours(roomClasses []string) map[string]string {
	sorted := make([]string, 0, len(roomClasses))
	seen := make(map[string]bool)
	for _, class := range roomClasses {
		if !seen[class] {
			seen[class] = true
			sorted = append(sorted, class)
		}
	}
	sort.Strings(sorted)

	colours := make(map[string]string, len(sorted))
	for i, class := range sorted {
		colours[class] = domain.Palette[i%len(domain.Palette)]
	}
	return colours
}
