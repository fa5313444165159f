// Package mindcare is the Go client for the MindCare API. It covers the
// mood-tracking surface: auth, mood submission and history, emotion
// detection, insights and the PDF report.
package mindcare

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mindcarehq/mindcare-backend/pkg/emotionscan"
	"github.com/mindcarehq/mindcare-backend/pkg/moodkit"
)

// ErrUnauthorized reports a missing or rejected credential. Callers
// should prompt for re-login rather than retry.
var ErrUnauthorized = errors.New("unauthorized")

// APIError is a non-2xx response the server explained. It is transient
// from the client's point of view: re-invoking the action retries it.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// Client talks to one MindCare server on behalf of one user. It is not
// safe for concurrent use across credential changes.
type Client struct {
	baseURL string
	http    *http.Client
	token   string
	refresh string
}

// New returns a client for the given base URL (e.g. "https://api.mindcare.app").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// SetToken installs a bearer token obtained outside Login.
func (c *Client) SetToken(token string) { c.token = token }

// AuthResponse is the token pair issued by register/login/refresh.
type AuthResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// Register creates an account and stores the issued access token.
func (c *Client) Register(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/register", email, password)
}

// Login authenticates and stores the issued access token.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResponse, error) {
	return c.authenticate(ctx, "/api/auth/login", email, password)
}

func (c *Client) authenticate(ctx context.Context, path, email, password string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"email": email, "password": password}
	if err := c.do(ctx, http.MethodPost, path, body, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	c.refresh = out.RefreshToken
	return &out, nil
}

// Refresh exchanges the stored refresh token for a new token pair. The
// server revokes the presented token, so the stored pair is replaced.
func (c *Client) Refresh(ctx context.Context) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"refresh_token": c.refresh}
	if err := c.do(ctx, http.MethodPost, "/api/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	c.token = out.AccessToken
	c.refresh = out.RefreshToken
	return &out, nil
}

// Logout revokes the stored refresh token and clears both credentials.
func (c *Client) Logout(ctx context.Context) error {
	body := map[string]string{"refresh_token": c.refresh}
	if err := c.do(ctx, http.MethodPost, "/api/auth/logout", body, nil); err != nil {
		return err
	}
	c.token = ""
	c.refresh = ""
	return nil
}

// DeleteAccount removes the account after re-confirming the password.
func (c *Client) DeleteAccount(ctx context.Context, password string) error {
	body := map[string]string{"password": password}
	if err := c.do(ctx, http.MethodDelete, "/api/auth/account", body, nil); err != nil {
		return err
	}
	c.token = ""
	c.refresh = ""
	return nil
}

type submitMoodRequest struct {
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
}

type submitMoodResponse struct {
	Date       string   `json:"date"`
	Mood       int      `json:"mood"`
	Activities []string `json:"activities"`
	Message    string   `json:"message"`
}

// SubmitMood logs today's mood and returns the canonical stored entry.
// A same-day resubmission updates the existing entry server-side.
// Implements moodkit.Submitter.
func (c *Client) SubmitMood(ctx context.Context, mood int, activities []string) (moodkit.Entry, error) {
	if activities == nil {
		activities = []string{}
	}
	var out submitMoodResponse
	err := c.do(ctx, http.MethodPost, "/api/moods", submitMoodRequest{Mood: mood, Activities: activities}, &out)
	if err != nil {
		return moodkit.Entry{}, err
	}
	return moodkit.Entry{Date: out.Date, Mood: out.Mood, Activities: out.Activities}, nil
}

// Moods fetches mood history, newest first. days < 0 asks for the
// server's default retention window, days == 0 requests full history.
// Pass the entries straight into a Tracker via SetEntries.
func (c *Client) Moods(ctx context.Context, days int) ([]moodkit.Entry, error) {
	path := "/api/moods"
	if days >= 0 {
		path = fmt.Sprintf("%s?days=%d", path, days)
	}
	var out []moodkit.Entry
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

type detectEmotionRequest struct {
	ImageData string `json:"image_data"`
}

// Detect infers the emotion on a single JPEG frame. Implements
// emotionscan.Detector, so a Client can back a Scanner directly.
func (c *Client) Detect(ctx context.Context, frame []byte) (emotionscan.Sample, error) {
	req := detectEmotionRequest{ImageData: base64.StdEncoding.EncodeToString(frame)}
	var out emotionscan.Sample
	if err := c.do(ctx, http.MethodPost, "/api/moods/detect-emotion", req, &out); err != nil {
		return emotionscan.Sample{}, err
	}
	return out, nil
}

// WeeklySummary is the server-computed Monday-first week view. Slots
// without an entry are nil, matching moodkit.AlignWeek.
type WeeklySummary struct {
	WeekStart   string           `json:"week_start"`
	Slots       []*moodkit.Entry `json:"slots"`
	AverageMood float64          `json:"average_mood"`
	DaysTracked int              `json:"days_tracked"`
}

// Weekly fetches the current week's aligned view. Offline callers can
// derive the same view locally with a Tracker.
func (c *Client) Weekly(ctx context.Context) (*WeeklySummary, error) {
	var out WeeklySummary
	if err := c.do(ctx, http.MethodGet, "/api/moods/summary/weekly", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Monthly fetches the current month's heatmap grid.
func (c *Client) Monthly(ctx context.Context) (*moodkit.MonthGrid, error) {
	var out moodkit.MonthGrid
	if err := c.do(ctx, http.MethodGet, "/api/moods/summary/monthly", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// TimelinePoint is one per-second emotion reading from a video journal.
type TimelinePoint struct {
	Time       float64 `json:"time"`
	Emotion    string  `json:"emotion"`
	Confidence float64 `json:"confidence"`
}

// Journal is an analyzed video-journal session.
type Journal struct {
	ID              string          `json:"id"`
	Date            string          `json:"date"`
	DominantEmotion string          `json:"dominant_emotion"`
	AvgConfidence   float64         `json:"avg_confidence"`
	Timeline        []TimelinePoint `json:"timeline"`
	Summary         string          `json:"summary"`
	Transcript      string          `json:"transcript"`
}

type createJournalRequest struct {
	Timeline   []TimelinePoint `json:"timeline"`
	Transcript string          `json:"transcript"`
}

// SubmitJournal sends a recorded emotion timeline for analysis and
// returns the stored entry with its narrative summary.
func (c *Client) SubmitJournal(ctx context.Context, timeline []TimelinePoint, transcript string) (*Journal, error) {
	var out Journal
	req := createJournalRequest{Timeline: timeline, Transcript: transcript}
	if err := c.do(ctx, http.MethodPost, "/api/moods/journal", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Journals fetches the most recent journal entries, newest first.
func (c *Client) Journals(ctx context.Context) ([]Journal, error) {
	var out []Journal
	if err := c.do(ctx, http.MethodGet, "/api/moods/journal", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Insights is the structured 30-day mood analysis.
type Insights struct {
	Summary        string `json:"summary"`
	Trend          string `json:"trend"`
	Patterns       string `json:"patterns,omitempty"`
	PossibleCauses string `json:"possible_causes,omitempty"`
	Suggestions    string `json:"suggestions,omitempty"`
	Warnings       string `json:"warnings,omitempty"`
}

// MoodInsights fetches the AI analysis of the recent mood history.
func (c *Client) MoodInsights(ctx context.Context) (*Insights, error) {
	var out struct {
		Insights Insights `json:"insights"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/moods/insights", nil, &out); err != nil {
		return nil, err
	}
	return &out.Insights, nil
}

// ExportPDF downloads the mood report for the retention window.
func (c *Client) ExportPDF(ctx context.Context) ([]byte, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/api/moods/export-pdf", nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return nil, err
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) newRequest(ctx context.Context, method, path string, body any) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	return req, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

func checkStatus(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	if resp.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}

	var body struct {
		Message string `json:"message"`
	}
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if body.Message == "" {
		body.Message = http.StatusText(resp.StatusCode)
	}
	return &APIError{Status: resp.StatusCode, Message: body.Message}
}
