package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishemitra/krishi/internal/model"
)

func TestLogin(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/login", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "9876543210", body["mobile"])
		assert.Equal(t, "123456", body["otp"])

		_ = json.NewEncoder(w).Encode(model.LoginResponse{
			Success: true,
			Message: "Login successful",
			Farmer: &model.Farmer{
				Mobile:   "9876543210",
				Name:     "Ravi Kumar",
				District: "Guntur",
				Mandal:   "Tenali",
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	resp, err := client.Login(context.Background(), "9876543210", "123456")
	require.NoError(t, err)
	assert.True(t, resp.Success)
	require.NotNil(t, resp.Farmer)
	assert.Equal(t, "Ravi Kumar", resp.Farmer.Name)
}

func TestRegisterValidationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"detail": "Mobile number already registered"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Register(context.Background(), model.Farmer{
		Mobile: "9876543210",
		Name:   "Ravi Kumar",
	})
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	assert.Equal(t, "Mobile number already registered", apiErr.Message)
}

func TestErrorWithoutDetailBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("something broke"))
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Crops(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "something broke", apiErr.Message)
}

func TestRecommendation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/recommendation", r.URL.Path)
		assert.Equal(t, "9876543210", r.URL.Query().Get("farmer_mobile"))

		var req model.RecommendationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Rice", req.CropName)
		assert.InDelta(t, 2.5, req.AreaSown, 0.0001)

		_ = json.NewEncoder(w).Encode(model.Recommendation{
			Crop:        "వరి",
			EnglishName: "Rice",
			TotalCost:   4200,
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	rec, err := client.Recommendation(context.Background(), "9876543210", model.RecommendationRequest{
		CropName:   "Rice",
		SowingDate: "2026-06-15",
		District:   "Guntur",
		Mandal:     "Tenali",
		AreaSown:   2.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "Rice", rec.EnglishName)
	assert.InDelta(t, 4200.0, rec.TotalCost, 0.0001)
}

func TestHistoryUnwrapsEnvelope(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/history", r.URL.Path)
		assert.Equal(t, "9876543210", r.URL.Query().Get("farmer_mobile"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"history": []model.Recommendation{
				{EnglishName: "Cotton", CreatedAt: "2026-08-20T10:00:00"},
				{EnglishName: "Rice", CreatedAt: "2026-07-01T09:00:00"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	history, err := client.History(context.Background(), "9876543210")
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Cotton", history[0].EnglishName)
}

func TestMandalsQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/mandals", r.URL.Path)
		assert.Equal(t, "Guntur", r.URL.Query().Get("district"))
		_ = json.NewEncoder(w).Encode([]model.Mandal{{Name: "Tenali"}, {Name: "Mangalagiri"}})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	mandals, err := client.Mandals(context.Background(), "Guntur")
	require.NoError(t, err)
	require.Len(t, mandals, 2)
	assert.Equal(t, "Tenali", mandals[0].Name)
}

func TestWeatherQuery(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/weather", r.URL.Path)
		assert.Equal(t, "Guntur", r.URL.Query().Get("district"))
		assert.Equal(t, "Tenali", r.URL.Query().Get("mandal"))
		_ = json.NewEncoder(w).Encode(model.Weather{Temperature: 31.5, Main: "Clouds", Humidity: 74})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	w, err := client.Weather(context.Background(), "Guntur", "Tenali")
	require.NoError(t, err)
	assert.InDelta(t, 31.5, w.Temperature, 0.0001)
	assert.Equal(t, "Clouds", w.Main)
}

func TestBaseURLNormalization(t *testing.T) {
	client := NewClient("http://example.com/")
	assert.Equal(t, "http://example.com", client.baseURL)

	client = NewClient("")
	assert.Equal(t, DefaultBaseURL, client.baseURL)
}

func TestContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode([]model.Crop{})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewClient(server.URL)
	_, err := client.Crops(ctx)
	assert.Error(t, err)
}
