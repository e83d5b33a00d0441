package codec

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/fitai/fitai/internal/model"
)

type userWire struct {
	ID            string   `json:"id"`
	Email         string   `json:"email"`
	Name          *string  `json:"name,omitempty"`
	CurrentWeight *float64 `json:"current_weight,omitempty"`
	TargetWeight  *float64 `json:"target_weight,omitempty"`
	Height        *float64 `json:"height,omitempty"`
	DateOfBirth   *string  `json:"date_of_birth,omitempty"`
	ActivityLevel *string  `json:"activity_level,omitempty"`
	CreatedAt     string   `json:"created_at"`
	UpdatedAt     string   `json:"updated_at"`
}

func toUserWire(u *model.User) userWire {
	return userWire{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		CurrentWeight: u.CurrentWeight,
		TargetWeight:  u.TargetWeight,
		Height:        u.Height,
		DateOfBirth:   formatOptionalTimestamp(u.DateOfBirth),
		ActivityLevel: u.ActivityLevel,
		CreatedAt:     FormatTimestamp(u.CreatedAt),
		UpdatedAt:     FormatTimestamp(u.UpdatedAt),
	}
}

// EncodeUser renders a user in canonical wire form.
func EncodeUser(u *model.User) ([]byte, error) {
	return json.Marshal(toUserWire(u))
}

// DecodeUser parses a user object.
func DecodeUser(data []byte) (*model.User, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}
	return decodeUser(obj)
}

func decodeUser(obj gjson.Result) (*model.User, error) {
	var (
		u   model.User
		err error
	)

	if u.ID, err = decodeString(obj, "id"); err != nil {
		return nil, err
	}
	if u.Email, err = decodeString(obj, "email"); err != nil {
		return nil, err
	}

	u.Name = decodeOptionalString(obj, "name")
	u.CurrentWeight = decodeOptionalNumber(obj, "current_weight")
	u.TargetWeight = decodeOptionalNumber(obj, "target_weight")
	u.Height = decodeOptionalNumber(obj, "height")
	u.DateOfBirth = decodeOptionalTimestamp(obj, "date_of_birth")
	u.ActivityLevel = decodeOptionalString(obj, "activity_level")

	if u.CreatedAt, err = decodeTimestamp(obj, "created_at"); err != nil {
		return nil, err
	}
	if u.UpdatedAt, err = decodeTimestamp(obj, "updated_at"); err != nil {
		return nil, err
	}

	return &u, nil
}
