package event

import (
	"strings"
)

var typeNames = map[EventType]string{
	EventMatchStart:   "MatchStart",
	EventMatchEnd:     "MatchEnd",
	EventHit:          "Hit",
	EventKnockout:     "Knockout",
	EventWallBounce:   "WallBounce",
	EventPlayerBounce: "PlayerBounce",
}

// String returns the registered name, "Unknown" for unregistered types
func (et EventType) String() string {
	if name, ok := typeNames[et]; ok {
		return name
	}
	return "Unknown"
}

// Lookup resolves a case-insensitive event name
func Lookup(name string) (EventType, bool) {
	for et, n := range typeNames {
		if strings.EqualFold(n, name) {
			return et, true
		}
	}
	return 0, false
}

// ParseMask turns a comma-separated name list into a type filter
// Empty input selects every type; unknown names are returned for reporting
func ParseMask(list string) (map[EventType]bool, []string) {
	mask := make(map[EventType]bool)
	var unknown []string
	if strings.TrimSpace(list) == "" {
		for et := range typeNames {
			mask[et] = true
		}
		return mask, nil
	}
	for _, raw := range strings.Split(list, ",") {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		et, ok := Lookup(name)
		if !ok {
			unknown = append(unknown, name)
			continue
		}
		mask[et] = true
	}
	return mask, unknown
}
