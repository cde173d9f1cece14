package user

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func fold(s string) string {
	return cases.Lower(language.Und).String(s)
}

// MatchesSearch reports whether term is a case-insensitive substring of the
// user's name, email or role. The empty term matches every user.
func (u User) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	return matchesFolded(u, fold(term))
}

func matchesFolded(u User, folded string) bool {
	return strings.Contains(fold(u.Name), folded) ||
		strings.Contains(fold(u.Email), folded) ||
		strings.Contains(fold(u.Role), folded)
}

// Filter returns the users matching term, in their original order.
// The result never shares a backing array with users.
func Filter(users []User, term string) []User {
	filtered := make([]User, 0, len(users))
	if term == "" {
		return append(filtered, users...)
	}
	folded := fold(term)
	for _, u := range users {
		if matchesFolded(u, folded) {
			filtered = append(filtered, u)
		}
	}
	return filtered
}

// IDs returns the ids of users in order
func IDs(users []User) []string {
	ids := make([]string, len(users))
	for i := range users {
		ids[i] = users[i].ID
	}
	return ids
}

// DuplicateIDs lists ids that occur more than once, in first-seen order
func DuplicateIDs(users []User) []string {
	seen := make(map[string]int, len(users))
	var dups []string
	for _, u := range users {
		seen[u.ID]++
		if seen[u.ID] == 2 {
			dups = append(dups, u.ID)
		}
	}
	return dups
}
