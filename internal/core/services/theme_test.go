package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pybay/runsheet-cli/internal/core/domain"
)

func TestAssignColours_OrderIndependent(t *testing.T) {
	a := AssignColours([]string{"Workshop", "Fisher", "Robertson"})
	b := AssignColours([]string{"Robertson", "Workshop", "Fisher"})
	assert.Equal(t, a, b, "tab colours must not depend on input order")

	// Alphabetical assignment from the palette head.
	assert.Equal(t, domain.Palette[0], a["Fisher"])
	assert.Equal(t, domain.Palette[1], a["Robertson"])
	assert.Equal(t, domain.Palette[2], a["Workshop"])
}

func TestAssignColours_DeduplicatesAndCycles(t *testing.T) {
	classes := []string{"A", "A", "B", "C", "D", "E"}
	colours := AssignColours(classes)
	assert.Len(t, colours, 5)
	assert.Equal(t, domain.Palette[0], colours["A"])
	assert.Equal(t, domain.Palette[0], colours["E"], "fifth class wraps to the palette head")
}

func TestAssignColours_Empty(t *testing.T) {
	assert.Empty(t, AssignColours(nil))
}
