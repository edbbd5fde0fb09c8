package domain

// PyBay brand palette. Hex values carry no '#' prefix, as the workbook
// backend expects.
const (
	PrimaryBlue     = "2E648E"
	PrimaryYellow   = "FDC13C"
	SecondaryBlue   = "D9E3EA"
	SecondaryYellow = "FCD582"
	Black           = "000000"
	White           = "FFFFFF"
)

// Palette is the tab-colour cycle, in assignment order.
var Palette = []string{PrimaryBlue, PrimaryYellow, SecondaryBlue, SecondaryYellow}
