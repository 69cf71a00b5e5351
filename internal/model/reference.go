package model

// Crop is one entry of the crop reference list. The backend keys crops
// by Telugu name; the English name is display-only.
type Crop struct {
	TeluguName  string `json:"telugu_name"`
	EnglishName string `json:"english_name"`
}

// District is one entry of the district reference list.
type District struct {
	Name string `json:"name"`
}

// Mandal is an administrative sub-division of a district.
type Mandal struct {
	Name string `json:"name"`
}

// LoginResponse is the backend login payload. Success is a business
// outcome carried in the body; callers must branch on it in addition to
// transport-level failure.
type LoginResponse struct {
	Success bool    `json:"success"`
	Message string  `json:"message"`
	Farmer  *Farmer `json:"farmer,omitempty"`
}
