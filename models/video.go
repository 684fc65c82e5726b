package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// Canonical portrait dimensions for short-form video.
const (
	DefaultVideoHeight  = 1920
	DefaultVideoWidth   = 1080
	DefaultVideoQuality = 100

	MinVideoQuality = 1
	MaxVideoQuality = 100
)

// ErrQualityOutOfRange rejects a transformation quality outside
// [MinVideoQuality, MaxVideoQuality] at persistence time.
var ErrQualityOutOfRange = errors.New("transformation quality must be between 1 and 100")

// Transformation describes how the external media host should render
// the video on playback.
type Transformation struct {
	Height  int `json:"height"`
	Width   int `json:"width"`
	Quality int `json:"quality"`
}

// Video is one published catalog entry. Media files live on the
// external host; the record only carries their URLs.
type Video struct {
	ID             int64          `json:"id" gorm:"primaryKey"`
	Title          string         `json:"title" gorm:"size:255;not null"`
	Description    string         `json:"description" gorm:"type:text;not null"`
	VideoURL       string         `json:"videoUrl" gorm:"size:512;not null"`
	ThumbnailURL   string         `json:"thumbnailUrl" gorm:"size:512;not null"`
	Controls       bool           `json:"controls"`
	Transformation Transformation `json:"transformation" gorm:"embedded;embeddedPrefix:transformation_"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
}

// TableName 指定表名（GORM 默认是复数，明确指定更安全）
func (Video) TableName() string {
	return "videos"
}

// BeforeCreate enforces the quality range the same way the store's
// schema validators would.
func (v *Video) BeforeCreate(*gorm.DB) error {
	q := v.Transformation.Quality
	if q < MinVideoQuality || q > MaxVideoQuality {
		return ErrQualityOutOfRange
	}
	return nil
}

// VideoInput is the create payload before defaulting. Pointer fields
// distinguish "absent" from a deliberate zero value.
type VideoInput struct {
	Title          string               `json:"title"`
	Description    string               `json:"description"`
	VideoURL       string               `json:"videoUrl"`
	ThumbnailURL   string               `json:"thumbnailUrl"`
	Controls       *bool                `json:"controls"`
	Transformation *TransformationInput `json:"transformation"`
}

type TransformationInput struct {
	Height  *int `json:"height"`
	Width   *int `json:"width"`
	Quality *int `json:"quality"`
}

// MissingFields names the required fields the payload left empty.
func (in VideoInput) MissingFields() []string {
	var missing []string
	if in.Title == "" {
		missing = append(missing, "title")
	}
	if in.Description == "" {
		missing = append(missing, "description")
	}
	if in.VideoURL == "" {
		missing = append(missing, "videoUrl")
	}
	if in.ThumbnailURL == "" {
		missing = append(missing, "thumbnailUrl")
	}
	return missing
}

// Normalize returns a fully populated record: controls defaults to
// true and the transformation falls back to the canonical portrait
// dimensions at full quality. Provided values are kept as given, so
// an out-of-range quality still reaches the persistence check.
func (in VideoInput) Normalize() Video {
	v := Video{
		Title:        in.Title,
		Description:  in.Description,
		VideoURL:     in.VideoURL,
		ThumbnailURL: in.ThumbnailURL,
		Controls:     true,
		Transformation: Transformation{
			Height:  DefaultVideoHeight,
			Width:   DefaultVideoWidth,
			Quality: DefaultVideoQuality,
		},
	}
	if in.Controls != nil {
		v.Controls = *in.Controls
	}
	if t := in.Transformation; t != nil {
		if t.Height != nil {
			v.Transformation.Height = *t.Height
		}
		if t.Width != nil {
			v.Transformation.Width = *t.Width
		}
		if t.Quality != nil {
			v.Transformation.Quality = *t.Quality
		}
	}
	return v
}
