package service

import (
	"context"
	"errors"

	"github.com/fitai/fitai/internal/model"
)

// Errors returned until photo storage and food recognition are connected.
var (
	ErrPhotoUploadUnavailable = errors.New("photo upload is not available yet")
	ErrAnalysisUnavailable    = errors.New("food photo analysis is not available yet")
)

// PhotoUploader stores a food photo and returns its metadata.
type PhotoUploader interface {
	UploadPhoto(ctx context.Context, userID string, image []byte, mimeType string) (*model.Photo, error)
}

// FoodAnalyzer recognises food in a photo.
type FoodAnalyzer interface {
	AnalyzeFoodPhoto(ctx context.Context, image []byte) (*model.FoodAnalysisResult, error)
}

// UnavailablePhotoUploader rejects every upload.
type UnavailablePhotoUploader struct{}

// UploadPhoto always returns ErrPhotoUploadUnavailable.
func (UnavailablePhotoUploader) UploadPhoto(context.Context, string, []byte, string) (*model.Photo, error) {
	return nil, ErrPhotoUploadUnavailable
}

// UnavailableFoodAnalyzer rejects every analysis.
type UnavailableFoodAnalyzer struct{}

// AnalyzeFoodPhoto always returns ErrAnalysisUnavailable.
func (UnavailableFoodAnalyzer) AnalyzeFoodPhoto(context.Context, []byte) (*model.FoodAnalysisResult, error) {
	return nil, ErrAnalysisUnavailable
}

var (
	_ PhotoUploader = UnavailablePhotoUploader{}
	_ FoodAnalyzer  = UnavailableFoodAnalyzer{}
)
