package dto

import (
	"bytes"
	"encoding/json"

	"clickrec/internal/model"
)

type RecordClickRequest struct {
	UserID          string `json:"userId" binding:"required"`
	ClickedCategory string `json:"clickedCategory" binding:"required"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type StatusResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type WelcomeResponse struct {
	Message string `json:"message"`
}

// ResultResponse carries a domain status; "error" results still use HTTP 200.
type ResultResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type RecommendationsResponse struct {
	Status               string              `json:"status"`
	MostCommonCategories []string            `json:"mostCommonCategories"`
	Recommendations      RankedSubCategories `json:"recommendations"`
	RecentClicks         []string            `json:"recentClicks"`
}

func NewRecommendationsResponse(rec model.Recommendation, status string) RecommendationsResponse {
	categories := rec.Categories()
	recent := rec.RecentClicks
	if recent == nil {
		recent = []string{}
	}
	return RecommendationsResponse{
		Status:               status,
		MostCommonCategories: categories,
		Recommendations:      RankedSubCategories{Order: categories, Names: rec.SubCategories},
		RecentClicks:         recent,
	}
}

// RankedSubCategories encodes as a JSON object whose keys follow Order.
type RankedSubCategories struct {
	Order []string
	Names map[string][]string
}

func (r RankedSubCategories) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, category := range r.Order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(category)
		if err != nil {
			return nil, err
		}
		names := r.Names[category]
		if names == nil {
			names = []string{}
		}
		value, err := json.Marshal(names)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (r *RankedSubCategories) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	r.Order = nil
	r.Names = make(map[string][]string)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		category, _ := tok.(string)
		var names []string
		if err := dec.Decode(&names); err != nil {
			return err
		}
		r.Order = append(r.Order, category)
		r.Names[category] = names
	}
	_, err := dec.Token()
	return err
}
