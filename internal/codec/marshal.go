package codec

import (
	"encoding/json"

	"github.com/fitai/fitai/internal/model"
)

var jsonNull = []byte("null")

// Marshal encodes v. Domain records use their canonical wire form; anything
// else goes through encoding/json.
func Marshal(v any) ([]byte, error) {
	switch r := v.(type) {
	case *model.FoodEntry:
		if r == nil {
			return jsonNull, nil
		}
		return EncodeFoodEntry(r)
	case model.FoodEntry:
		return EncodeFoodEntry(&r)
	case []model.FoodEntry:
		return EncodeFoodEntries(r)
	case *model.User:
		if r == nil {
			return jsonNull, nil
		}
		return EncodeUser(r)
	case model.User:
		return EncodeUser(&r)
	case *model.DailyGoal:
		if r == nil {
			return jsonNull, nil
		}
		return EncodeDailyGoal(r)
	case model.DailyGoal:
		return EncodeDailyGoal(&r)
	case *model.Photo:
		if r == nil {
			return jsonNull, nil
		}
		return EncodePhoto(r)
	case model.Photo:
		return EncodePhoto(&r)
	case *model.AuthResponse:
		if r == nil {
			return jsonNull, nil
		}
		return EncodeAuthResponse(r)
	case model.AuthResponse:
		return EncodeAuthResponse(&r)
	default:
		return json.Marshal(v)
	}
}
