package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"clickrec/internal/model"
)

func TestRankedSubCategoriesKeepsRankOrder(t *testing.T) {
	ranked := RankedSubCategories{
		Order: []string{"Grocery Shopping", "Cooking", "Art"},
		Names: map[string][]string{
			"Cooking":          {"Baking"},
			"Grocery Shopping": {"Produce", "Dairy"},
		},
	}

	raw, err := json.Marshal(ranked)
	require.NoError(t, err)
	require.Equal(t, `{"Grocery Shopping":["Produce","Dairy"],"Cooking":["Baking"],"Art":[]}`, string(raw))

	var back RankedSubCategories
	require.NoError(t, json.Unmarshal(raw, &back))
	require.Equal(t, ranked.Order, back.Order)
	require.Equal(t, []string{"Produce", "Dairy"}, back.Names["Grocery Shopping"])
	require.Empty(t, back.Names["Art"])
}

func TestNewRecommendationsResponseEmpty(t *testing.T) {
	resp := NewRecommendationsResponse(model.Recommendation{}, "success")

	raw, err := json.Marshal(resp)
	require.NoError(t, err)
	require.JSONEq(t, `{"status":"success","mostCommonCategories":[],"recommendations":{},"recentClicks":[]}`, string(raw))
}
