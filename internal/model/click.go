package model

import "time"

type Click struct {
	UserID    string    `json:"userId"`
	Category  string    `json:"category"`
	ClickedAt time.Time `json:"clickedAt"`
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// Recommendation is derived per request and never stored.
type Recommendation struct {
	MostCommon    []CategoryCount
	SubCategories map[string][]string
	RecentClicks  []string
}

// Categories returns the ranked labels without their counts.
func (r Recommendation) Categories() []string {
	out := make([]string, 0, len(r.MostCommon))
	for _, c := range r.MostCommon {
		out = append(out, c.Category)
	}
	return out
}
