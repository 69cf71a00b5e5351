// Package testutil provides test doubles shared by the TUI and
// command tests.
package testutil

import (
	"context"
	"sync"

	"github.com/krishemitra/krishi/internal/model"
)

// FakeBackend is an in-memory advisory backend. Each call returns the
// canned response or error configured for it and is recorded in Calls.
// The zero value returns empty successful responses everywhere.
type FakeBackend struct {
	mu    sync.Mutex
	Calls []string

	RegisterErr    error
	RegisterResult model.Farmer

	LoginErr    error
	LoginResult model.LoginResponse

	RecommendationErr    error
	RecommendationResult model.Recommendation

	HistoryErr    error
	HistoryResult []model.Recommendation

	CropsErr    error
	CropsResult []model.Crop

	DistrictsErr    error
	DistrictsResult []model.District

	MandalsErr error
	// MandalsByDistrict keys the response on the requested district so
	// tests can exercise district switches.
	MandalsByDistrict map[string][]model.Mandal

	WeatherErr    error
	WeatherResult model.Weather
}

func (f *FakeBackend) record(call string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Calls = append(f.Calls, call)
}

// CallCount returns how many times call was made.
func (f *FakeBackend) CallCount(call string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Calls {
		if c == call {
			n++
		}
	}
	return n
}

// Register implements the backend interface.
func (f *FakeBackend) Register(_ context.Context, _ model.Farmer) (model.Farmer, error) {
	f.record("register")
	if f.RegisterErr != nil {
		return model.Farmer{}, f.RegisterErr
	}
	return f.RegisterResult, nil
}

// Login implements the backend interface.
func (f *FakeBackend) Login(_ context.Context, _, _ string) (model.LoginResponse, error) {
	f.record("login")
	if f.LoginErr != nil {
		return model.LoginResponse{}, f.LoginErr
	}
	return f.LoginResult, nil
}

// Recommendation implements the backend interface.
func (f *FakeBackend) Recommendation(_ context.Context, _ string, _ model.RecommendationRequest) (model.Recommendation, error) {
	f.record("recommendation")
	if f.RecommendationErr != nil {
		return model.Recommendation{}, f.RecommendationErr
	}
	return f.RecommendationResult, nil
}

// History implements the backend interface.
func (f *FakeBackend) History(_ context.Context, _ string) ([]model.Recommendation, error) {
	f.record("history")
	if f.HistoryErr != nil {
		return nil, f.HistoryErr
	}
	return f.HistoryResult, nil
}

// Crops implements the backend interface.
func (f *FakeBackend) Crops(_ context.Context) ([]model.Crop, error) {
	f.record("crops")
	if f.CropsErr != nil {
		return nil, f.CropsErr
	}
	return f.CropsResult, nil
}

// Districts implements the backend interface.
func (f *FakeBackend) Districts(_ context.Context) ([]model.District, error) {
	f.record("districts")
	if f.DistrictsErr != nil {
		return nil, f.DistrictsErr
	}
	return f.DistrictsResult, nil
}

// Mandals implements the backend interface.
func (f *FakeBackend) Mandals(_ context.Context, district string) ([]model.Mandal, error) {
	f.record("mandals:" + district)
	if f.MandalsErr != nil {
		return nil, f.MandalsErr
	}
	return f.MandalsByDistrict[district], nil
}

// Weather implements the backend interface.
func (f *FakeBackend) Weather(_ context.Context, _, _ string) (model.Weather, error) {
	f.record("weather")
	if f.WeatherErr != nil {
		return model.Weather{}, f.WeatherErr
	}
	return f.WeatherResult, nil
}
