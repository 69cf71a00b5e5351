// Package model defines the domain types shared across the application.
package model

import (
	"fmt"
	"strconv"
)

// MobileLength is the required length of a farmer's mobile number.
const MobileLength = 10

// OTPLength is the required length of a one-time password.
const OTPLength = 6

// Farmer is a registered user, identified by mobile number.
type Farmer struct {
	ID                 int    `json:"id,omitempty"`
	Mobile             string `json:"mobile"`
	Name               string `json:"name"`
	District           string `json:"district"`
	Mandal             string `json:"mandal"`
	LanguagePreference string `json:"language_preference"`
}

// Validate checks a farmer record before it is sent to the backend.
func (f Farmer) Validate() error {
	if !ValidMobile(f.Mobile) {
		return fmt.Errorf("invalid mobile number %q: must be exactly %d digits", f.Mobile, MobileLength)
	}
	if f.Name == "" {
		return fmt.Errorf("farmer name is required")
	}
	return nil
}

// ValidMobile reports whether s is an exactly-10-digit numeric string.
func ValidMobile(s string) bool {
	if len(s) != MobileLength {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// RecommendationRequest describes a crop/plot/sowing-date combination
// submitted for a fertilizer recommendation. Consumed exactly once by
// the API client; never persisted locally.
type RecommendationRequest struct {
	CropName   string  `json:"crop_name"`
	Variety    string  `json:"variety,omitempty"`
	SowingDate string  `json:"sowing_date"` // YYYY-MM-DD
	District   string  `json:"district"`
	Mandal     string  `json:"mandal"`
	AreaSown   float64 `json:"area_sown"`
}

// Validate checks the request before any network call is made.
func (r RecommendationRequest) Validate() error {
	if r.CropName == "" {
		return fmt.Errorf("crop name is required")
	}
	if r.SowingDate == "" {
		return fmt.Errorf("sowing date is required")
	}
	if r.District == "" {
		return fmt.Errorf("district is required")
	}
	if r.Mandal == "" {
		return fmt.Errorf("mandal is required")
	}
	if r.AreaSown <= 0 {
		return fmt.Errorf("area sown must be a positive number of acres")
	}
	return nil
}

// ParseArea converts a user-entered acreage string to a positive decimal.
func ParseArea(s string) (float64, error) {
	area, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid area %q: %w", s, err)
	}
	if area <= 0 {
		return 0, fmt.Errorf("area must be greater than zero, got %v", area)
	}
	return area, nil
}
