// Package components contains the screen models of the TUI. Each
// screen owns its own loading/error state machine; cross-screen
// handoff happens only through the exported messages consumed by the
// root model.
package components

import (
	"context"
	"time"

	"github.com/krishemitra/krishi/internal/i18n"
	"github.com/krishemitra/krishi/internal/model"
)

// Backend is the slice of the advisory API used by the screens. It is
// satisfied by *api.Client and faked in tests.
type Backend interface {
	Register(ctx context.Context, farmer model.Farmer) (model.Farmer, error)
	Login(ctx context.Context, mobile, otp string) (model.LoginResponse, error)
	Recommendation(ctx context.Context, farmerMobile string, req model.RecommendationRequest) (model.Recommendation, error)
	History(ctx context.Context, farmerMobile string) ([]model.Recommendation, error)
	Crops(ctx context.Context) ([]model.Crop, error)
	Districts(ctx context.Context) ([]model.District, error)
	Mandals(ctx context.Context, district string) ([]model.Mandal, error)
	Weather(ctx context.Context, district, mandal string) (model.Weather, error)
}

// phase is the explicit data-loading state machine every screen runs.
type phase int

const (
	phaseIdle phase = iota
	phaseLoading
	phaseError
	phaseLoaded
)

// requestTimeout bounds every backend call issued by a screen.
const requestTimeout = 30 * time.Second

// apiContext returns the context used for a screen-issued request.
func apiContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// generation counters scope async responses to the fetch that issued
// them: a response carrying a stale generation is dropped instead of
// mutating a screen the user has already navigated away from.
var genCounter int

func nextGen() int {
	genCounter++
	return genCounter
}

// Messages consumed by the root model.

// LoginSuccessMsg reports an authenticated farmer.
type LoginSuccessMsg struct {
	Farmer   model.Farmer
	Language i18n.Language
}

// LogoutMsg requests a full session reset.
type LogoutMsg struct{}

// BackMsg returns to the dashboard.
type BackMsg struct{}

// NewRecommendationMsg opens the recommendation form.
type NewRecommendationMsg struct{}

// OpenProfileMsg opens the profile screen.
type OpenProfileMsg struct{}

// OpenRecommendationMsg opens a historical recommendation in the
// results screen.
type OpenRecommendationMsg struct {
	Recommendation model.Recommendation
}

// RecommendationReadyMsg hands a freshly computed recommendation from
// the form to the results screen.
type RecommendationReadyMsg struct {
	Recommendation model.Recommendation
}

// ProfileSavedMsg reports an edited farmer record to persist.
type ProfileSavedMsg struct {
	Farmer model.Farmer
}
