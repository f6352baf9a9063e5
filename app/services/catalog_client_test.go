package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/resonatefm/resonate-gateway/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testServicesConfig(baseURL string) config.ServicesConfig {
	return config.ServicesConfig{
		CatalogBaseURL:      baseURL,
		SocialBaseURL:       baseURL,
		NotificationBaseURL: baseURL,
		PlaylistBaseURL:     baseURL,
		UserBaseURL:         baseURL,
		MetricsBaseURL:      baseURL,
		RequestTimeout:      5 * time.Second,
	}
}

func TestCatalogClient_CreateRelease(t *testing.T) {
	var gotPath, gotMethod string
	var gotBody dto.CreateReleaseRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotMethod = r.Method
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(dto.ReleaseDTO{
			ID:       "release-1",
			ArtistID: "artist-1",
			Title:    gotBody.Title,
			Type:     gotBody.Type,
		})
	}))
	defer srv.Close()

	client := NewCatalogClient(testServicesConfig(srv.URL))
	release, err := client.CreateRelease(context.Background(), "artist-1", &dto.CreateReleaseRequest{
		Title:       "Midnight Tapes",
		Type:        "album",
		ReleaseDate: "2026-09-04",
	})

	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/api/v1/artists/artist-1/releases", gotPath)
	assert.Equal(t, "Midnight Tapes", gotBody.Title)
	assert.Equal(t, "release-1", release.ID)
}

func TestCatalogClient_GetRelease_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"no such release"}`, http.StatusNotFound)
	}))
	defer srv.Close()

	client := NewCatalogClient(testServicesConfig(srv.URL))
	_, err := client.GetRelease(context.Background(), "release-404")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
}

func TestCatalogClient_ListReleases_Pagination(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.ListReleasesResponse{
			Releases:   []dto.ReleaseDTO{{ID: "release-1"}},
			Pagination: dto.PaginationDTO{Page: 2, Limit: 25, Total: 30, TotalPages: 2},
		})
	}))
	defer srv.Close()

	client := NewCatalogClient(testServicesConfig(srv.URL))
	res, err := client.ListReleases(context.Background(), "artist-1", 2, 25)

	require.NoError(t, err)
	assert.Equal(t, "page=2&limit=25", gotQuery)
	assert.Equal(t, 2, res.Pagination.Page)
	require.Len(t, res.Releases, 1)
}

func TestCatalogClient_ServerErrorCarriesStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewCatalogClient(testServicesConfig(srv.URL))
	_, err := client.GetArtist(context.Background(), "artist-1")

	require.Error(t, err)
	var de *DownstreamError
	require.ErrorAs(t, err, &de)
	assert.Equal(t, http.StatusInternalServerError, de.StatusCode)
	assert.False(t, IsNotFound(err))
}
