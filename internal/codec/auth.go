package codec

import (
	"encoding/json"

	"github.com/fitai/fitai/internal/model"
)

type authResponseWire struct {
	User  userWire `json:"user"`
	Token string   `json:"token"`
}

// EncodeAuthResponse renders a token/user pair.
func EncodeAuthResponse(r *model.AuthResponse) ([]byte, error) {
	return json.Marshal(authResponseWire{
		User:  toUserWire(&r.User),
		Token: r.Token,
	})
}

// DecodeAuthResponse parses a {"user": ..., "token": ...} object.
func DecodeAuthResponse(data []byte) (*model.AuthResponse, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	token, err := decodeString(obj, "token")
	if err != nil {
		return nil, err
	}

	userObj := obj.Get("user")
	if !userObj.IsObject() {
		return nil, malformed("user", userObj.Raw)
	}
	user, err := decodeUser(userObj)
	if err != nil {
		return nil, withPrefix(err, "user")
	}

	return &model.AuthResponse{User: *user, Token: token}, nil
}
