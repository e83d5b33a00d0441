package model

import "time"

// FoodAnalysisResult is the outcome of analysing a food photo.
type FoodAnalysisResult struct {
	FoodName      string         `json:"food_name"`
	Calories      float64        `json:"calories"`
	Protein       float64        `json:"protein"`
	Carbs         float64        `json:"carbs"`
	Fat           float64        `json:"fat"`
	ServingSize   *string        `json:"serving_size,omitempty"`
	Confidence    float64        `json:"confidence"`
	MultipleItems []AnalyzedItem `json:"multiple_items,omitempty"`
}

// AnalyzedItem is one recognised item of a multi-item analysis.
type AnalyzedItem struct {
	Name        string  `json:"name"`
	Calories    float64 `json:"calories"`
	Protein     float64 `json:"protein"`
	Carbs       float64 `json:"carbs"`
	Fat         float64 `json:"fat"`
	ServingSize *string `json:"serving_size,omitempty"`
}

// ToFoodEntry converts the analysis into an AI-analysed food entry.
// ID, UserID, Date and MealType are supplied by the caller.
func (r *FoodAnalysisResult) ToFoodEntry(id, userID string, date time.Time, meal MealType, now time.Time) FoodEntry {
	confidence := r.Confidence
	return FoodEntry{
		ID:           id,
		UserID:       userID,
		Date:         date,
		MealType:     meal,
		FoodName:     r.FoodName,
		Calories:     r.Calories,
		Protein:      r.Protein,
		Carbs:        r.Carbs,
		Fat:          r.Fat,
		ServingSize:  r.ServingSize,
		AIAnalyzed:   true,
		AIConfidence: &confidence,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
