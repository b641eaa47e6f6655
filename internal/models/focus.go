package models

import (
	"fmt"
	"strings"
)

// FocusGroup is one of the six fixed muscle-group categories a session
// targets. Every logged set belongs to exactly one focus group.
type FocusGroup string

const (
	FocusBack     FocusGroup = "Back"
	FocusShoulder FocusGroup = "Shoulder"
	FocusChest    FocusGroup = "Chest"
	FocusBiceps   FocusGroup = "Biceps"
	FocusLegs     FocusGroup = "Legs"
	FocusTriceps  FocusGroup = "Triceps"
)

// FocusGroups lists all groups in display order.
var FocusGroups = []FocusGroup{
	FocusBack, FocusShoulder, FocusChest, FocusBiceps, FocusLegs, FocusTriceps,
}

// ParseFocusGroup matches a raw string (case-insensitive, surrounding
// whitespace ignored) against the fixed enumeration.
func ParseFocusGroup(s string) (FocusGroup, error) {
	trimmed := strings.TrimSpace(s)
	for _, fg := range FocusGroups {
		if strings.EqualFold(trimmed, string(fg)) {
			return fg, nil
		}
	}
	return "", fmt.Errorf("unknown focus group %q", s)
}

func (f FocusGroup) String() string { return string(f) }
