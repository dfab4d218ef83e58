// Package recommend ranks a user's categories by how often they were clicked
// in the most recent part of their history.
package recommend

import (
	"sort"

	"clickrec/internal/model"
)

// Window returns the last size entries of history. A non-positive size selects nothing.
func Window(history []string, size int) []string {
	if size <= 0 {
		return []string{}
	}
	if size >= len(history) {
		return append([]string{}, history...)
	}
	return append([]string{}, history[len(history)-size:]...)
}

// Top counts the categories in the last windowSize clicks and returns at most
// n of them, highest count first. Equal counts keep first-appearance order.
// The window itself is returned alongside the ranking.
func Top(history []string, windowSize, n int) ([]model.CategoryCount, []string) {
	recent := Window(history, windowSize)
	return MostCommon(recent, n), recent
}

// MostCommon ranks the labels of clicks by frequency.
func MostCommon(clicks []string, n int) []model.CategoryCount {
	counts := make([]model.CategoryCount, 0)
	index := make(map[string]int)
	for _, category := range clicks {
		if i, ok := index[category]; ok {
			counts[i].Count++
			continue
		}
		index[category] = len(counts)
		counts = append(counts, model.CategoryCount{Category: category, Count: 1})
	}

	sort.SliceStable(counts, func(i, j int) bool {
		return counts[i].Count > counts[j].Count
	})

	if n >= 0 && len(counts) > n {
		counts = counts[:n]
	}
	return counts
}
