package codec

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/fitai/fitai/internal/model"
)

type dailyGoalWire struct {
	ID                 string `json:"id"`
	UserID             string `json:"user_id"`
	DailyCalorieGoal   int    `json:"daily_calorie_goal"`
	DailyProteinGoal   int    `json:"daily_protein_goal"`
	DailyCarbGoal      int    `json:"daily_carb_goal"`
	DailyFatGoal       int    `json:"daily_fat_goal"`
	CalorieDeficitGoal *int   `json:"calorie_deficit_goal,omitempty"`
	CalorieSurplusGoal *int   `json:"calorie_surplus_goal,omitempty"`
	IsActive           bool   `json:"is_active"`
	CreatedAt          string `json:"created_at"`
	UpdatedAt          string `json:"updated_at"`
}

// EncodeDailyGoal renders a goal in canonical wire form.
func EncodeDailyGoal(g *model.DailyGoal) ([]byte, error) {
	return json.Marshal(dailyGoalWire{
		ID:                 g.ID,
		UserID:             g.UserID,
		DailyCalorieGoal:   g.DailyCalorieGoal,
		DailyProteinGoal:   g.DailyProteinGoal,
		DailyCarbGoal:      g.DailyCarbGoal,
		DailyFatGoal:       g.DailyFatGoal,
		CalorieDeficitGoal: g.CalorieDeficitGoal,
		CalorieSurplusGoal: g.CalorieSurplusGoal,
		IsActive:           g.IsActive,
		CreatedAt:          FormatTimestamp(g.CreatedAt),
		UpdatedAt:          FormatTimestamp(g.UpdatedAt),
	})
}

// DecodeDailyGoal parses a goal object.
func DecodeDailyGoal(data []byte) (*model.DailyGoal, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return decodeDailyGoal(obj)
}

// DecodeOptionalDailyGoal parses a goal object, or returns nil for a JSON null
// or an empty body.
func DecodeOptionalDailyGoal(data []byte) (*model.DailyGoal, error) {
	if len(data) == 0 {
		return nil, nil
	}
	if gjson.ValidBytes(data) && gjson.ParseBytes(data).Type == gjson.Null {
		return nil, nil
	}
	return DecodeDailyGoal(data)
}

func decodeDailyGoal(obj gjson.Result) (*model.DailyGoal, error) {
	var (
		g   model.DailyGoal
		err error
	)

	if g.ID, err = decodeString(obj, "id"); err != nil {
		return nil, err
	}
	if g.UserID, err = decodeString(obj, "user_id"); err != nil {
		return nil, err
	}
	if g.DailyCalorieGoal, err = decodeInt(obj, "daily_calorie_goal"); err != nil {
		return nil, err
	}
	if g.DailyProteinGoal, err = decodeInt(obj, "daily_protein_goal"); err != nil {
		return nil, err
	}
	if g.DailyCarbGoal, err = decodeInt(obj, "daily_carb_goal"); err != nil {
		return nil, err
	}
	if g.DailyFatGoal, err = decodeInt(obj, "daily_fat_goal"); err != nil {
		return nil, err
	}

	g.CalorieDeficitGoal = decodeOptionalInt(obj, "calorie_deficit_goal")
	g.CalorieSurplusGoal = decodeOptionalInt(obj, "calorie_surplus_goal")
	g.IsActive = decodeBool(obj, "is_active")

	if g.CreatedAt, err = decodeTimestamp(obj, "created_at"); err != nil {
		return nil, err
	}
	if g.UpdatedAt, err = decodeTimestamp(obj, "updated_at"); err != nil {
		return nil, err
	}

	return &g, nil
}
