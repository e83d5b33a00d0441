package codec

import (
	"encoding/json"
	"math"

	"github.com/fitai/fitai/internal/model"
)

type photoWire struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	FoodEntryID *string `json:"food_entry_id,omitempty"`
	StorageURL  string  `json:"storage_url"`
	LocalPath   *string `json:"local_path,omitempty"`
	FileSize    int64   `json:"file_size"`
	MimeType    string  `json:"mime_type"`
	CreatedAt   string  `json:"created_at"`
}

// EncodePhoto renders photo metadata in canonical wire form.
func EncodePhoto(p *model.Photo) ([]byte, error) {
	return json.Marshal(photoWire{
		ID:          p.ID,
		UserID:      p.UserID,
		FoodEntryID: p.FoodEntryID,
		StorageURL:  p.StorageURL,
		LocalPath:   p.LocalPath,
		FileSize:    p.FileSize,
		MimeType:    p.MimeType,
		CreatedAt:   FormatTimestamp(p.CreatedAt),
	})
}

// DecodePhoto parses photo metadata.
func DecodePhoto(data []byte) (*model.Photo, error) {
	obj, err := parseObject(data)
	if err != nil {
		return nil, err
	}

	var p model.Photo
	if p.ID, err = decodeString(obj, "id"); err != nil {
		return nil, err
	}
	if p.UserID, err = decodeString(obj, "user_id"); err != nil {
		return nil, err
	}
	p.FoodEntryID = decodeOptionalString(obj, "food_entry_id")
	if p.StorageURL, err = decodeString(obj, "storage_url"); err != nil {
		return nil, err
	}
	p.LocalPath = decodeOptionalString(obj, "local_path")

	size, err := decodeNumber(obj, "file_size")
	if err != nil {
		return nil, err
	}
	if size < 0 || size != math.Trunc(size) {
		return nil, malformed("file_size", obj.Get("file_size").Raw)
	}
	p.FileSize = int64(size)

	if p.MimeType, err = decodeString(obj, "mime_type"); err != nil {
		return nil, err
	}
	if p.CreatedAt, err = decodeTimestamp(obj, "created_at"); err != nil {
		return nil, err
	}

	return &p, nil
}
