package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/resonatefm/resonate-gateway/app/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocialGraphClient_GetFollowersPage(t *testing.T) {
	var gotPath, gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.FollowersPageDTO{
			Followers: []dto.FollowerDTO{{UID: "follower-1"}, {UID: "follower-2"}},
			Pagination: dto.PaginationDTO{
				Page: 1, Limit: 50, Total: 2, TotalPages: 1,
			},
		})
	}))
	defer srv.Close()

	client := NewSocialGraphClient(testServicesConfig(srv.URL))
	page, err := client.GetFollowersPage(context.Background(), "user-owner", 1, 50)

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/users/user-owner/followers", gotPath)
	assert.Equal(t, "page=1&limit=50", gotQuery)
	require.Len(t, page.Followers, 2)
	assert.Equal(t, "follower-1", page.Followers[0].UID)
	assert.Equal(t, 1, page.Pagination.TotalPages)
}

func TestSocialGraphClient_GetFollowerCount(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(dto.FollowersPageDTO{
			Followers:  []dto.FollowerDTO{{UID: "follower-1"}},
			Pagination: dto.PaginationDTO{Page: 1, Limit: 1, Total: 4321, TotalPages: 4321},
		})
	}))
	defer srv.Close()

	client := NewSocialGraphClient(testServicesConfig(srv.URL))
	total, err := client.GetFollowerCount(context.Background(), "user-owner")

	require.NoError(t, err)
	// The count rides on a minimal single-item page
	assert.Equal(t, "page=1&limit=1", gotQuery)
	assert.Equal(t, 4321, total)
}
