package entity

import "strings"

// SplitName breaks a full name into first name and the rest.
// A blank name yields two empty strings.
func SplitName(name string) (first, last string) {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return "", ""
	}
	return parts[0], strings.Join(parts[1:], " ")
}
