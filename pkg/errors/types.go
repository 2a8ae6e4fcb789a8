package errors

import (
	"fmt"
	"strings"
)

// UnknownType returns a TYPE_NOT_FOUND error for a type name that is not in
// the graph. role names what the caller asked for, e.g. "resource". When
// known holds a close spelling of name, the message suggests it.
func UnknownType(role, name string, known []string) *Error {
	msg := fmt.Sprintf("unknown %s: %s", role, name)
	if s := closestName(name, known); s != "" {
		msg += fmt.Sprintf(" (did you mean %s?)", s)
	}
	return &Error{Code: ErrCodeTypeNotFound, Message: msg}
}

// closestName returns the member of known nearest to name, preferring a case
// insensitive match. Candidates more than a third of name's length away are
// ignored; ties go to the lexically smaller name.
func closestName(name string, known []string) string {
	best, bestDist := "", len(name)/3+1
	for _, k := range known {
		if k == name {
			continue
		}
		if strings.EqualFold(k, name) {
			return k
		}
		d := editDistance(strings.ToLower(name), strings.ToLower(k))
		if d < bestDist || (d == bestDist && best != "" && k < best) {
			best, bestDist = k, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	prev := make([]int, len(rb)+1)
	cur := make([]int, len(rb)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		cur[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(rb)]
}
