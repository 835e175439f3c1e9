package fuzzy

import "testing"

func TestLevenshteinDistance(t *testing.T) {
	cases := []struct {
		a, b string
		want int
	}{
		{"kitten", "sitting", 3},
		{"", "abc", 3},
		{"acme", "acme", 0},
		{"Acme", " acme ", 0}, // normalized
	}
	for _, tc := range cases {
		if got := LevenshteinDistance(tc.a, tc.b); got != tc.want {
			t.Fatalf("distance(%q, %q) = %d, want %d", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestMatch(t *testing.T) {
	if !Match("john", "John Smith", 1) {
		t.Fatalf("expected substring match")
	}
	if !Match("jhon", "John Smith", 2) {
		t.Fatalf("expected fuzzy match within threshold")
	}
	if Match("zzzz", "John Smith", 1) {
		t.Fatalf("unexpected match")
	}
}

func TestRelevanceScoreOrdersFields(t *testing.T) {
	nameHit := RelevanceScore("acme", "Acme Corp", "", "")
	companyHit := RelevanceScore("acme", "John Smith", "Acme Corp", "")
	headlineHit := RelevanceScore("acme", "John Smith", "Other Inc", "Engineer at Acme")

	if nameHit <= companyHit || companyHit <= headlineHit {
		t.Fatalf("expected name > company > headline, got %v, %v, %v", nameHit, companyHit, headlineHit)
	}
	if RelevanceScore("acme", "John Smith", "", "") != 0 {
		t.Fatalf("expected zero score with no match")
	}
	if RelevanceScore("", "Acme", "Acme", "Acme") != 0 {
		t.Fatalf("expected zero score for empty query")
	}
}
