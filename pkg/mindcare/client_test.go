package mindcare

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSubmitMoodParsesCanonicalEntry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/moods" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("authorization = %q, want Bearer tok", got)
		}
		var req struct {
			Mood       int      `json:"mood"`
			Activities []string `json:"activities"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.Mood != 5 || len(req.Activities) != 1 || req.Activities[0] != "Exercise" {
			t.Errorf("request = %+v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"date":       "2026-08-26",
			"mood":       5,
			"activities": []string{"Exercise"},
			"message":    "Mood updated successfully",
		})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetToken("tok")
	entry, err := c.SubmitMood(context.Background(), 5, []string{"Exercise"})
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	if entry.Date != "2026-08-26" || entry.Mood != 5 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestSubmitMoodNilActivitiesSendsEmptyArray(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if string(raw["activities"]) != "[]" {
			t.Errorf("activities = %s, want []", raw["activities"])
		}
		json.NewEncoder(w).Encode(map[string]any{"date": "2026-08-26", "mood": 3})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).SubmitMood(context.Background(), 3, nil); err != nil {
		t.Fatalf("submit: %v", err)
	}
}

func TestUnauthorizedSentinel(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := New(srv.URL).Moods(context.Background(), 0)
	if !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized", err)
	}
}

func TestAPIErrorCarriesServerMessage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(w).Encode(map[string]string{"message": "database unavailable"})
	}))
	defer srv.Close()

	_, err := New(srv.URL).Moods(context.Background(), 0)
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("err = %v, want *APIError", err)
	}
	if apiErr.Status != http.StatusServiceUnavailable || apiErr.Message != "database unavailable" {
		t.Errorf("apiErr = %+v", apiErr)
	}
}

func TestMoodsDaysQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("days"); got != "90" {
			t.Errorf("days = %q, want 90", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"date": "2026-08-26", "mood": 4, "activities": []string{"Sleep"}},
			{"date": "2026-08-25", "mood": 2, "activities": []string{}},
		})
	}))
	defer srv.Close()

	entries, err := New(srv.URL).Moods(context.Background(), 90)
	if err != nil {
		t.Fatalf("moods: %v", err)
	}
	if len(entries) != 2 || entries[0].Date != "2026-08-26" || entries[0].Mood != 4 {
		t.Errorf("entries = %+v", entries)
	}
}

func TestMoodsOmitsDaysWhenUnset(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.RawQuery != "" {
			t.Errorf("query = %q, want empty", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Moods(context.Background(), -1); err != nil {
		t.Fatalf("moods: %v", err)
	}
}

func TestMoodsZeroRequestsFullHistory(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("days"); got != "0" {
			t.Errorf("days = %q, want 0", got)
		}
		json.NewEncoder(w).Encode([]map[string]any{})
	}))
	defer srv.Close()

	if _, err := New(srv.URL).Moods(context.Background(), 0); err != nil {
		t.Fatalf("moods: %v", err)
	}
}

func TestDetectEncodesFrame(t *testing.T) {
	frame := []byte{0xff, 0xd8, 0x01, 0x02}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/moods/detect-emotion" {
			t.Errorf("path = %s", r.URL.Path)
		}
		var req struct {
			ImageData string `json:"image_data"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.ImageData != base64.StdEncoding.EncodeToString(frame) {
			t.Errorf("image_data = %q", req.ImageData)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"emotion": "Happy", "confidence": 0.87, "mapped_mood": 5,
		})
	}))
	defer srv.Close()

	sample, err := New(srv.URL).Detect(context.Background(), frame)
	if err != nil {
		t.Fatalf("detect: %v", err)
	}
	if sample.Emotion != "Happy" || sample.Confidence != 0.87 || sample.MappedMood != 5 {
		t.Errorf("sample = %+v", sample)
	}
}

func TestLoginStoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "at-1", "refresh_token": "rt-1",
			})
		case "/api/moods":
			if got := r.Header.Get("Authorization"); got != "Bearer at-1" {
				t.Errorf("authorization = %q, want Bearer at-1", got)
			}
			json.NewEncoder(w).Encode([]map[string]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	resp, err := c.Login(context.Background(), "a@b.c", "secret")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken != "at-1" {
		t.Errorf("access token = %s", resp.AccessToken)
	}
	if _, err := c.Moods(context.Background(), 0); err != nil {
		t.Fatalf("moods: %v", err)
	}
}

func TestRefreshRotatesTokenPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "at-1", "refresh_token": "rt-1",
			})
		case "/api/auth/refresh":
			var req struct {
				RefreshToken string `json:"refresh_token"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.RefreshToken != "rt-1" {
				t.Errorf("refresh_token = %q, want rt-1", req.RefreshToken)
			}
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "at-2", "refresh_token": "rt-2",
			})
		case "/api/moods":
			if got := r.Header.Get("Authorization"); got != "Bearer at-2" {
				t.Errorf("authorization = %q, want Bearer at-2", got)
			}
			json.NewEncoder(w).Encode([]map[string]any{})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	resp, err := c.Refresh(context.Background())
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if resp.AccessToken != "at-2" {
		t.Errorf("access token = %s, want at-2", resp.AccessToken)
	}
	if _, err := c.Moods(context.Background(), -1); err != nil {
		t.Fatalf("moods: %v", err)
	}
}

func TestLogoutRevokesAndClearsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/auth/login":
			json.NewEncoder(w).Encode(map[string]string{
				"access_token": "at-1", "refresh_token": "rt-1",
			})
		case "/api/auth/logout":
			var req struct {
				RefreshToken string `json:"refresh_token"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				t.Fatalf("decode: %v", err)
			}
			if req.RefreshToken != "rt-1" {
				t.Errorf("refresh_token = %q, want rt-1", req.RefreshToken)
			}
			json.NewEncoder(w).Encode(map[string]string{"message": "Logged out"})
		case "/api/moods":
			if got := r.Header.Get("Authorization"); got != "" {
				t.Errorf("authorization = %q, want cleared", got)
			}
			w.WriteHeader(http.StatusUnauthorized)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)
	if _, err := c.Login(context.Background(), "a@b.c", "secret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := c.Logout(context.Background()); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := c.Moods(context.Background(), -1); !errors.Is(err, ErrUnauthorized) {
		t.Fatalf("err = %v, want ErrUnauthorized after logout", err)
	}
}

func TestDeleteAccount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/api/auth/account" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Password string `json:"password"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if req.Password != "secret" {
			t.Errorf("password = %q, want secret", req.Password)
		}
		json.NewEncoder(w).Encode(map[string]string{"message": "Account deleted"})
	}))
	defer srv.Close()

	if err := New(srv.URL).DeleteAccount(context.Background(), "secret"); err != nil {
		t.Fatalf("delete account: %v", err)
	}
}

func TestSummaryViews(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/moods/summary/weekly":
			json.NewEncoder(w).Encode(map[string]any{
				"week_start": "2026-08-24",
				"slots": []any{
					nil, nil,
					map[string]any{"date": "2026-08-26", "mood": 5, "activities": []string{"Exercise"}},
					nil, nil, nil, nil,
				},
				"average_mood": 5.0,
				"days_tracked": 1,
			})
		case "/api/moods/summary/monthly":
			json.NewEncoder(w).Encode(map[string]any{
				"year": 2026, "month": 8, "padding": 5,
				"cells": []map[string]any{
					{"day": 1, "date": "2026-08-01", "bucket": "empty"},
				},
			})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := New(srv.URL)

	week, err := c.Weekly(context.Background())
	if err != nil {
		t.Fatalf("weekly: %v", err)
	}
	if week.WeekStart != "2026-08-24" || week.DaysTracked != 1 {
		t.Errorf("weekly = %+v", week)
	}
	if len(week.Slots) != 7 || week.Slots[2] == nil || week.Slots[2].Mood != 5 {
		t.Errorf("slots = %+v", week.Slots)
	}
	if week.Slots[0] != nil {
		t.Errorf("slot 0 = %+v, want nil", week.Slots[0])
	}

	grid, err := c.Monthly(context.Background())
	if err != nil {
		t.Fatalf("monthly: %v", err)
	}
	if grid.Padding != 5 || len(grid.Cells) != 1 || grid.Cells[0].Date != "2026-08-01" {
		t.Errorf("grid = %+v", grid)
	}
}

func TestSubmitJournal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/moods/journal" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		var req struct {
			Timeline   []TimelinePoint `json:"timeline"`
			Transcript string          `json:"transcript"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if len(req.Timeline) != 2 || req.Timeline[1].Emotion != "Sad" {
			t.Errorf("timeline = %+v", req.Timeline)
		}
		if req.Transcript != "long day" {
			t.Errorf("transcript = %q", req.Transcript)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"id":               "j-1",
			"date":             "2026-08-29T10:00:00Z",
			"dominant_emotion": "Sad",
			"avg_confidence":   0.75,
			"timeline":         req.Timeline,
			"summary":          "You appeared consistently Sad throughout your reflection.",
			"transcript":       req.Transcript,
		})
	}))
	defer srv.Close()

	timeline := []TimelinePoint{
		{Time: 0, Emotion: "Neutral", Confidence: 0.7},
		{Time: 1, Emotion: "Sad", Confidence: 0.8},
	}
	entry, err := New(srv.URL).SubmitJournal(context.Background(), timeline, "long day")
	if err != nil {
		t.Fatalf("submit journal: %v", err)
	}
	if entry.ID != "j-1" || entry.DominantEmotion != "Sad" || len(entry.Timeline) != 2 {
		t.Errorf("entry = %+v", entry)
	}
}

func TestJournals(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet || r.URL.Path != "/api/moods/journal" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "j-2", "dominant_emotion": "Happy", "avg_confidence": 0.9},
			{"id": "j-1", "dominant_emotion": "Sad", "avg_confidence": 0.6},
		})
	}))
	defer srv.Close()

	entries, err := New(srv.URL).Journals(context.Background())
	if err != nil {
		t.Fatalf("journals: %v", err)
	}
	if len(entries) != 2 || entries[0].ID != "j-2" || entries[1].DominantEmotion != "Sad" {
		t.Errorf("entries = %+v", entries)
	}
}

func TestMoodInsights(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"insights": map[string]string{
				"summary": "Your mood has been generally positive.",
				"trend":   "stable",
			},
		})
	}))
	defer srv.Close()

	ins, err := New(srv.URL).MoodInsights(context.Background())
	if err != nil {
		t.Fatalf("insights: %v", err)
	}
	if ins.Trend != "stable" || ins.Summary == "" {
		t.Errorf("insights = %+v", ins)
	}
}
