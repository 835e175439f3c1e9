package fuzzy

import "strings"

// LevenshteinDistance is the number of single-character edits needed to turn
// one string into the other. Both inputs are normalized first.
func LevenshteinDistance(s1, s2 string) int {
	s1 = normalize(s1)
	s2 = normalize(s2)

	if len(s1) == 0 {
		return len(s2)
	}
	if len(s2) == 0 {
		return len(s1)
	}

	r1 := []rune(s1)
	r2 := []rune(s2)
	m := len(r1)
	n := len(r2)

	d := make([][]int, m+1)
	for i := range d {
		d[i] = make([]int, n+1)
	}
	for i := 0; i <= m; i++ {
		d[i][0] = i
	}
	for j := 0; j <= n; j++ {
		d[0][j] = j
	}

	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			cost := 0
			if r1[i-1] != r2[j-1] {
				cost = 1
			}
			d[i][j] = min3(
				d[i-1][j]+1,      // deletion
				d[i][j-1]+1,      // insertion
				d[i-1][j-1]+cost, // substitution
			)
		}
	}

	return d[m][n]
}

// Match reports whether query fuzzy-matches text within an edit-distance
// threshold. Substring containment and word prefixes always match.
func Match(query, text string, threshold int) bool {
	query = normalize(query)
	text = normalize(text)

	if strings.Contains(text, query) {
		return true
	}

	for _, word := range strings.Fields(text) {
		if LevenshteinDistance(query, word) <= threshold {
			return true
		}
		if strings.HasPrefix(word, query) {
			return true
		}
	}

	return false
}

// RelevanceScore scores a prospect against a query over its name, company
// and headline. Name hits weigh most, then company, then headline. A score
// of 0 means no match.
func RelevanceScore(query, name, company, headline string) float64 {
	query = normalize(query)
	if query == "" {
		return 0
	}

	score := 0.0
	score += fieldScore(query, name, 100.0)
	score += fieldScore(query, company, 80.0)
	score += fieldScore(query, headline, 60.0)
	return score
}

// fieldScore applies the shared containment/word/fuzzy scoring to one field,
// scaled by the field's base weight.
func fieldScore(query, field string, weight float64) float64 {
	norm := normalize(field)
	if norm == "" {
		return 0
	}

	if strings.Contains(norm, query) {
		score := weight
		if containsWord(norm, query) {
			score += weight / 2
		}
		return score
	}

	score := 0.0
	for _, word := range strings.Fields(norm) {
		dist := LevenshteinDistance(query, word)
		if dist <= 2 {
			score += weight/2 - float64(dist)*weight/8
		}
		if strings.HasPrefix(word, query) {
			score += weight / 3
		}
	}
	return score
}

func min3(a, b, c int) int {
	if a < b {
		if a < c {
			return a
		}
		return c
	}
	if b < c {
		return b
	}
	return c
}

func normalize(s string) string {
	s = strings.ToLower(s)
	return strings.Join(strings.Fields(s), " ")
}

func containsWord(text, query string) bool {
	for _, word := range strings.Fields(text) {
		if word == query {
			return true
		}
	}
	return false
}
