package model

// Recommendation is the backend-computed fertilizer plan for a specific
// crop, plot and sowing date. The client treats it as read-only display
// data; all amounts, dates and stages arrive pre-computed.
type Recommendation struct {
	Crop                  string                  `json:"crop"`
	EnglishName           string                  `json:"english_name"`
	Variety               string                  `json:"variety,omitempty"`
	AreaSown              float64                 `json:"area_sown"`
	SowingDate            string                  `json:"sowing_date"`
	CurrentStage          string                  `json:"current_stage"`
	DaysAfterSowing       int                     `json:"days_after_sowing"`
	StageDescription      string                  `json:"stage_description"`
	Fertilizers           []Fertilizer            `json:"fertilizers"`
	TotalCost             float64                 `json:"total_cost"`
	ExpectedYieldIncrease string                  `json:"expected_yield_increase"`
	Notes                 []string                `json:"notes"`
	District              string                  `json:"district"`
	Mandal                string                  `json:"mandal"`
	Weather               *Weather                `json:"weather,omitempty"`
	WeatherAnalysis       *WeatherAnalysis        `json:"weather_analysis,omitempty"`
	StageSchedule         *StageSchedule          `json:"stage_schedule,omitempty"`
	Organic               *OrganicRecommendations `json:"organic_recommendations,omitempty"`
	CreatedAt             string                  `json:"created_at,omitempty"`
}

// Fertilizer is one row of the flat fertilizer table, with total and
// per-acre amounts plus cost in rupees.
type Fertilizer struct {
	Type          string  `json:"type"`
	TeluguName    string  `json:"telugu_name"`
	AmountKg      float64 `json:"amount_kg"`
	AmountPerAcre float64 `json:"amount_per_acre"`
	Timing        string  `json:"timing"`
	Cost          float64 `json:"cost"`
	Nutrient      string  `json:"nutrient"`
}

// Weather is a point-in-time weather snapshot for a mandal.
type Weather struct {
	Location    string  `json:"location"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    int     `json:"humidity"`
	Description string  `json:"description"`
	Main        string  `json:"main"`
	Icon        string  `json:"icon"`
	WindSpeed   float64 `json:"wind_speed"`
	Clouds      int     `json:"clouds"`
	Rain1h      float64 `json:"rain_1h"`
	Rain3h      float64 `json:"rain_3h"`
	Timestamp   string  `json:"timestamp"`
	IsMock      bool    `json:"is_mock"`
}

// WeatherAnalysis is the backend's application-timing advice derived
// from current weather.
type WeatherAnalysis struct {
	Condition    string   `json:"condition"`
	CanApply     bool     `json:"can_apply"`
	TimingAdvice string   `json:"timing_advice"`
	WeatherNotes []string `json:"weather_notes"`
	Temperature  float64  `json:"temperature"`
	Rainfall3h   float64  `json:"rainfall_3h"`
	RainExpected bool     `json:"rain_expected_24h"`
}

// StageSchedule is the stage-indexed fertilizer timeline. When present
// it always contains at least one stage, each with at least one
// fertilizer.
type StageSchedule struct {
	Crop              string  `json:"crop"`
	CropKey           string  `json:"crop_key"`
	SowingDate        string  `json:"sowing_date"`
	SowingDateDisplay string  `json:"sowing_date_formatted"`
	TotalDurationDays int     `json:"total_duration_days"`
	AreaSown          float64 `json:"area_sown"`
	Stages            []Stage `json:"stages"`
	TotalStages       int     `json:"total_stages"`
}

// Stage is one crop-growth stage with its fertilizer doses and timing.
type Stage struct {
	Name                   string            `json:"stage_name"`
	NameTelugu             string            `json:"stage_name_te"`
	Icon                   string            `json:"icon"`
	DaysAfterSowing        int               `json:"days_after_sowing"`
	DurationDays           int               `json:"duration_days"`
	ApplicationDate        string            `json:"application_date"`
	ApplicationDateDisplay string            `json:"application_date_formatted"`
	Fertilizers            []StageFertilizer `json:"fertilizers"`
	InstructionsEN         string            `json:"instructions_en"`
	InstructionsTE         string            `json:"instructions_te"`
}

// StageFertilizer is a single dose within a stage.
type StageFertilizer struct {
	Name          string  `json:"name"`
	NameTelugu    string  `json:"name_te"`
	AmountKg      float64 `json:"amount_kg"`
	AmountPerAcre float64 `json:"amount_per_acre"`
	Nutrient      string  `json:"nutrient"`
	Percentage    string  `json:"percentage"`
}

// OrganicRecommendations lists organic alternatives to the chemical plan.
type OrganicRecommendations struct {
	Manures        []OrganicItem `json:"manures"`
	BioFertilizers []OrganicItem `json:"bio_fertilizers"`
	GreenManures   []OrganicItem `json:"green_manures"`
}

// OrganicItem is one organic input with a bilingual name.
type OrganicItem struct {
	Name        string `json:"name"`
	TeluguName  string `json:"telugu_name"`
	RatePerAcre string `json:"rate_per_acre,omitempty"`
	Season      string `json:"season,omitempty"`
}
