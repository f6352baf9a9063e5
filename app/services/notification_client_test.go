package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationClient_SendBatch(t *testing.T) {
	var gotPath string
	var gotBody BatchNotificationRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	client := NewNotificationClient(testServicesConfig(srv.URL))
	err := client.SendBatch(context.Background(), &BatchNotificationRequest{
		UserIDs: []string{"follower-1", "follower-2"},
		Title:   "New Release",
		Body:    "An artist you follow has released a new album: Midnight Tapes",
		Data:    map[string]any{"release_id": "release-1"},
	})

	require.NoError(t, err)
	assert.Equal(t, "/api/v1/notifications/batch", gotPath)
	assert.Equal(t, []string{"follower-1", "follower-2"}, gotBody.UserIDs)
	assert.Equal(t, "New Release", gotBody.Title)
	assert.Equal(t, "release-1", gotBody.Data["release_id"])
}

func TestNotificationClient_SendBatchEmptyIsNoop(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	client := NewNotificationClient(testServicesConfig(srv.URL))
	err := client.SendBatch(context.Background(), &BatchNotificationRequest{Title: "New Release"})

	require.NoError(t, err)
	assert.Zero(t, hits.Load())
}

func TestNotificationClient_MarkRead(t *testing.T) {
	var gotMethod, gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := NewNotificationClient(testServicesConfig(srv.URL))
	err := client.MarkRead(context.Background(), "user-1", "notification-1")

	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/api/v1/users/user-1/notifications/notification-1/read", gotPath)
}
