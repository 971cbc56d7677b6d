package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/mindease/mindease/internal"
	"github.com/mindease/mindease/internal/storage"
)

var validate = validator.New()

// MoodRequest is the write payload for one mood entry. Date and mood are the
// only required fields.
type MoodRequest struct {
	Date      string                   `json:"date" validate:"required"`
	Mood      string                   `json:"mood" validate:"required"`
	Note      string                   `json:"note" validate:"max=500"`
	Icon      string                   `json:"icon,omitempty"`
	Tags      []string                 `json:"tags"`
	Lifestyle *internal.LifestyleStats `json:"lifestyle,omitempty"`
	UserEmail string                   `json:"userEmail,omitempty"`
}

func ValidateMoodRequest(body *MoodRequest) error {
	if err := validate.Struct(body); err != nil {
		if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
			return &internal.ValidationError{Field: errs[0].Field(), Reason: errs[0].Tag()}
		}
		return err
	}
	if ls := body.Lifestyle; ls != nil {
		if ls.SleepHours < 0 || ls.WaterOunces < 0 || ls.MindfulMinutes < 0 || ls.Steps < 0 {
			return &internal.ValidationError{Field: "lifestyle", Reason: "metrics must be non-negative"}
		}
	}
	return nil
}

// CreateMood assigns identity and persists one entry.
func CreateMood(ctx context.Context, repo storage.MoodRepository, body *MoodRequest) (*internal.MoodEntry, error) {
	tags := body.Tags
	if tags == nil {
		tags = []string{}
	}
	entry := &internal.MoodEntry{
		ID:        uuid.NewString(),
		Date:      body.Date,
		Mood:      body.Mood,
		Note:      body.Note,
		Icon:      body.Icon,
		Tags:      tags,
		Lifestyle: body.Lifestyle,
		UserEmail: body.UserEmail,
	}
	if err := repo.SaveMood(ctx, entry); err != nil {
		return nil, err
	}
	return entry, nil
}
