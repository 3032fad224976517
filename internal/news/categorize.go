package news

import "strings"

// CategoryGeneral is assigned when no keyword rule matches.
const CategoryGeneral = "general"

// CategoryIndia gets special query handling (country-scoped search).
const CategoryIndia = "india"

type categoryRule struct {
	name     string
	keywords []string
}

// categoryRules is evaluated top to bottom and the first hit wins, so the
// order is part of the contract: "startup" appears under both technology
// and business, and must always resolve to technology.
var categoryRules = []categoryRule{
	{name: "technology", keywords: []string{
		"tech", "ai", "artificial intelligence", "software", "startup",
		"smartphone", "gadget", "chip", "semiconductor", "cyber", "internet",
		"robot", "computing",
	}},
	{name: "business", keywords: []string{
		"business", "market", "stocks", "economy", "finance", "trade",
		"investor", "ipo", "bank", "revenue", "profit", "merger",
	}},
	{name: "sports", keywords: []string{
		"cricket", "football", "sport", "tournament", "olympic", "ipl",
		"match", "championship", "tennis", "league", "world cup",
	}},
	{name: "entertainment", keywords: []string{
		"movie", "film", "bollywood", "hollywood", "music", "celebrity",
		"entertainment", "box office", "trailer", "actor", "netflix",
	}},
	{name: "science", keywords: []string{
		"science", "research", "space", "nasa", "isro", "discovery",
		"quantum", "climate", "physics", "satellite", "telescope",
	}},
	{name: "health", keywords: []string{
		"health", "covid", "vaccine", "disease", "medical", "hospital",
		"doctor", "wellness", "medicine", "outbreak",
	}},
	{name: "world", keywords: []string{
		"world", "global", "international", "united nations", "diplomacy",
		"summit", "treaty", "embassy",
	}},
	{name: CategoryIndia, keywords: []string{
		"india", "delhi", "mumbai", "modi", "parliament", "lok sabha",
		"rupee", "bengaluru",
	}},
}

// Categories returns the fetchable category names in priority order.
func Categories() []string {
	out := make([]string, 0, len(categoryRules))
	for _, r := range categoryRules {
		out = append(out, r.name)
	}
	return out
}

// ValidCategory reports whether s is a known stored category
// (the fetchable eight plus "general").
func ValidCategory(s string) bool {
	if s == CategoryGeneral {
		return true
	}
	for _, r := range categoryRules {
		if r.name == s {
			return true
		}
	}
	return false
}

// Detect classifies title+description text by keyword lookup. The combined
// text is lower-cased and each rule's keywords are tried as substring
// matches; the first rule with a hit wins. No hit means "general".
func Detect(title, description string) string {
	text := strings.ToLower(title + " " + description)
	for _, rule := range categoryRules {
		for _, kw := range rule.keywords {
			if strings.Contains(text, kw) {
				return rule.name
			}
		}
	}
	return CategoryGeneral
}
