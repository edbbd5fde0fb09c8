package domain

import "strings"

// RoomClasses are the fixed physical venues, in display order.
// A session maps to a class by substring containment so that room
// fields with building qualifiers ("Robertson Room, 2nd floor") still
// match. Matching is case-sensitive, mirroring the export's naming.
var RoomClasses = []string{"Robertson", "Fisher", "Workshop"}

// MatchRoomClass returns the class a room field belongs to, or ""
// when it matches none. Alternate-speaker rows match no class and are
// reported, not rendered.
func MatchRoomClass(room string) string {
	for _, class := range RoomClasses {
		if strings.Contains(room, class) {
			return class
		}
	}
	return ""
}

// KnownRoomClass reports whether class is one of the fixed venues.
func KnownRoomClass(class string) bool {
	for _, c := range RoomClasses {
		if c == class {
			return true
		}
	}
	return false
}
