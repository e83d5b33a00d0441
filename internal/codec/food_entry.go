package codec

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/fitai/fitai/internal/model"
)

type foodEntryWire struct {
	ID           string   `json:"id"`
	UserID       string   `json:"user_id"`
	Date         string   `json:"date"`
	MealType     string   `json:"meal_type"`
	FoodName     string   `json:"food_name"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
	ServingSize  *string  `json:"serving_size,omitempty"`
	PhotoURL     *string  `json:"photo_url,omitempty"`
	AIAnalyzed   bool     `json:"ai_analyzed"`
	AIConfidence *float64 `json:"ai_confidence,omitempty"`
	Notes        *string  `json:"notes,omitempty"`
	CreatedAt    string   `json:"created_at"`
	UpdatedAt    string   `json:"updated_at"`
}

func toFoodEntryWire(e *model.FoodEntry) foodEntryWire {
	return foodEntryWire{
		ID:           e.ID,
		UserID:       e.UserID,
		Date:         FormatDate(e.Date),
		MealType:     string(e.MealType),
		FoodName:     e.FoodName,
		Calories:     e.Calories,
		Protein:      e.Protein,
		Carbs:        e.Carbs,
		Fat:          e.Fat,
		ServingSize:  e.ServingSize,
		PhotoURL:     e.PhotoURL,
		AIAnalyzed:   e.AIAnalyzed,
		AIConfidence: e.AIConfidence,
		Notes:        e.Notes,
		CreatedAt:    FormatTimestamp(e.CreatedAt),
		UpdatedAt:    FormatTimestamp(e.UpdatedAt),
	}
}

// EncodeFoodEntry renders an entry in canonical wire form.
func EncodeFoodEntry(e *model.FoodEntry) ([]byte, error) {
	return json.Marshal(toFoodEntryWire(e))
}

// EncodeFoodEntries renders a list of entries; nil encodes as an empty array.
func EncodeFoodEntries(entries []model.FoodEntry) ([]byte, error) {
	wire := make([]foodEntryWire, 0, len(entries))
	for i := range entries {
		wire = append(wire, toFoodEntryWire(&entries[i]))
	}
	return json.Marshal(wire)
}

// DecodeFoodEntry parses a single entry object.
func DecodeFoodEntry(data []byte) (*model.FoodEntry, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return decodeFoodEntry(obj)
}

// DecodeFoodEntries parses an array of entry objects.
func DecodeFoodEntries(data []byte) ([]model.FoodEntry, error) {
	arr, err := parseArray(data)
	if err != nil {
		return nil, err
	}

	items := arr.Array()
	entries := make([]model.FoodEntry, 0, len(items))
	for i, item := range items {
		if !item.IsObject() {
			return nil, withIndex(ErrMalformedRecord, i)
		}
		entry, err := decodeFoodEntry(item)
		if err != nil {
			return nil, withIndex(err, i)
		}
		entries = append(entries, *entry)
	}
	return entries, nil
}

func decodeFoodEntry(obj gjson.Result) (*model.FoodEntry, error) {
	var (
		e   model.FoodEntry
		err error
	)

	if e.ID, err = decodeString(obj, "id"); err != nil {
		return nil, err
	}
	if e.UserID, err = decodeString(obj, "user_id"); err != nil {
		return nil, err
	}
	if e.Date, err = decodeDate(obj, "date"); err != nil {
		return nil, err
	}
	if e.MealType, err = decodeMealType(obj, "meal_type"); err != nil {
		return nil, err
	}
	if e.FoodName, err = decodeString(obj, "food_name"); err != nil {
		return nil, err
	}
	if e.Calories, err = decodeNumber(obj, "calories"); err != nil {
		return nil, err
	}
	if e.Protein, err = decodeNumber(obj, "protein"); err != nil {
		return nil, err
	}
	if e.Carbs, err = decodeNumber(obj, "carbs"); err != nil {
		return nil, err
	}
	if e.Fat, err = decodeNumber(obj, "fat"); err != nil {
		return nil, err
	}

	e.ServingSize = decodeOptionalString(obj, "serving_size")
	e.PhotoURL = decodeOptionalString(obj, "photo_url")
	e.AIAnalyzed = decodeBool(obj, "ai_analyzed")
	e.AIConfidence = decodeOptionalNumber(obj, "ai_confidence")
	e.Notes = decodeOptionalString(obj, "notes")

	if e.CreatedAt, err = decodeTimestamp(obj, "created_at"); err != nil {
		return nil, err
	}
	if e.UpdatedAt, err = decodeTimestamp(obj, "updated_at"); err != nil {
		return nil, err
	}

	return &e, nil
}

func decodeMealType(obj gjson.Result, field string) (model.MealType, error) {
	v := obj.Get(field)
	if !v.Exists() {
		return "", malformed(field, "")
	}
	meal := model.MealType(v.Str)
	if v.Type != gjson.String || !meal.IsValid() {
		return "", &FieldError{Field: field, Value: v.Raw, Err: ErrInvalidEnum}
	}
	return meal, nil
}
