package models

import "strings"

// Genre lists are persisted as a single comma-delimited string, the way the
// submission form delivers them. JoinGenres and SplitGenres are the only two
// places that know the delimiter; the round trip preserves order.

func JoinGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func SplitGenres(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}
