package session

import (
	"regexp"
	"strings"
)

// dangerPattern matches destructive keywords as whole words, case-insensitive.
var dangerPattern = regexp.MustCompile(`(?i)\b(drop|truncate|delete|alter|shutdown|kill)\b`)

// ContainsDangerous reports whether the statement carries a destructive
// keyword and must pass the confirmation gate before execution.
func ContainsDangerous(stmt string) bool {
	return dangerPattern.MatchString(stmt)
}

// affirmative accepts only an explicit yes; anything else, including an
// empty answer, denies.
func affirmative(answer string) bool {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "yes", "y":
		return true
	}
	return false
}
