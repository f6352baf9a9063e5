package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/resonatefm/resonate-gateway/app/dto"
	businessflow "github.com/resonatefm/resonate-gateway/business_flow"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubReleaseFlow struct {
	createRes *dto.CreateReleaseResponse
	createErr error
	gotArtist string
	gotReq    *dto.CreateReleaseRequest
	getRes    *dto.ReleaseDTO
	getErr    error
}

func (s *stubReleaseFlow) CreateRelease(_ context.Context, artistID string, req *dto.CreateReleaseRequest, _ *businessflow.ClientMetadata) (*dto.CreateReleaseResponse, error) {
	s.gotArtist = artistID
	s.gotReq = req
	return s.createRes, s.createErr
}

func (s *stubReleaseFlow) GetRelease(context.Context, string) (*dto.ReleaseDTO, error) {
	return s.getRes, s.getErr
}

func (s *stubReleaseFlow) ListReleases(context.Context, string, int, int) (*dto.ListReleasesResponse, error) {
	return &dto.ListReleasesResponse{}, nil
}

func (s *stubReleaseFlow) Wait() {}

func newReleaseTestApp(flow businessflow.ReleaseFlow) *fiber.App {
	app := fiber.New()
	handler := NewReleaseHandler(flow)
	app.Post("/api/v1/artists/:artistId/releases", handler.CreateRelease)
	app.Get("/api/v1/releases/:releaseId", handler.GetRelease)
	return app
}

func doJSONRequest(t *testing.T, app *fiber.App, method, target, body string) (*http.Response, dto.APIResponse) {
	t.Helper()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	var apiResp dto.APIResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&apiResp))
	return resp, apiResp
}

func TestReleaseHandler_CreateRelease(t *testing.T) {
	flow := &stubReleaseFlow{
		createRes: &dto.CreateReleaseResponse{
			Message: "Release created successfully",
			Release: dto.ReleaseDTO{ID: "release-1", Title: "Midnight Tapes"},
		},
	}
	app := newReleaseTestApp(flow)

	resp, apiResp := doJSONRequest(t, app, http.MethodPost, "/api/v1/artists/artist-1/releases",
		`{"title":"Midnight Tapes","type":"album","release_date":"2026-09-04"}`)

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.True(t, apiResp.Success)
	assert.Equal(t, "Release created successfully", apiResp.Message)
	assert.Equal(t, "artist-1", flow.gotArtist)
	require.NotNil(t, flow.gotReq)
	assert.Equal(t, "Midnight Tapes", flow.gotReq.Title)
}

func TestReleaseHandler_CreateRelease_ValidationRejected(t *testing.T) {
	flow := &stubReleaseFlow{}
	app := newReleaseTestApp(flow)

	resp, apiResp := doJSONRequest(t, app, http.MethodPost, "/api/v1/artists/artist-1/releases",
		`{"title":"Midnight Tapes","type":"mixtape","release_date":"2026-09-04"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, apiResp.Success)
	// The flow is never reached when struct validation fails
	assert.Nil(t, flow.gotReq)
}

func TestReleaseHandler_CreateRelease_BadReleaseDate(t *testing.T) {
	app := newReleaseTestApp(&stubReleaseFlow{})

	resp, apiResp := doJSONRequest(t, app, http.MethodPost, "/api/v1/artists/artist-1/releases",
		`{"title":"Midnight Tapes","type":"album","release_date":"tomorrow"}`)

	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.False(t, apiResp.Success)
}

func TestReleaseHandler_CreateRelease_UpstreamFailure(t *testing.T) {
	flow := &stubReleaseFlow{
		createErr: businessflow.NewBusinessError("RELEASE_CREATION_FAILED", "Failed to create release", assert.AnError),
	}
	app := newReleaseTestApp(flow)

	resp, apiResp := doJSONRequest(t, app, http.MethodPost, "/api/v1/artists/artist-1/releases",
		`{"title":"Midnight Tapes","type":"album","release_date":"2026-09-04"}`)

	assert.Equal(t, fiber.StatusBadGateway, resp.StatusCode)
	assert.False(t, apiResp.Success)
}

func TestReleaseHandler_GetRelease_NotFound(t *testing.T) {
	flow := &stubReleaseFlow{
		getErr: businessflow.NewBusinessError("RELEASE_NOT_FOUND", "Release not found", businessflow.ErrReleaseNotFound),
	}
	app := newReleaseTestApp(flow)

	resp, apiResp := doJSONRequest(t, app, http.MethodGet, "/api/v1/releases/release-404", "")

	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.False(t, apiResp.Success)
}
