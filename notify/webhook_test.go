package notify_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"complaintdesk-backend/notify"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebhookNotifier_PostsSnapshot(t *testing.T) {
	var received notify.Submission
	var contentType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contentType = r.Header.Get("Content-Type")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	fileURL := "https://example.com/blob.png"
	notifier := notify.NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), notify.Submission{
		StudentName: "Alex",
		Email:       "a@x.edu",
		Title:       "Broken AC",
		Description: "details",
		Type:        "Facilities",
		FileURL:     &fileURL,
		Status:      "Submitted",
	})

	require.NoError(t, err)
	assert.Equal(t, "application/json", contentType)
	assert.Equal(t, "Alex", received.StudentName)
	assert.Equal(t, "Submitted", received.Status)
	require.NotNil(t, received.FileURL)
	assert.Equal(t, fileURL, *received.FileURL)
}

func TestWebhookNotifier_NullFileURL(t *testing.T) {
	var raw map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
	}))
	defer server.Close()

	notifier := notify.NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), notify.Submission{
		StudentName: "Alex",
		Status:      "Submitted",
	})

	require.NoError(t, err)
	val, ok := raw["file_url"]
	assert.True(t, ok, "file_url must be present in the payload")
	assert.Nil(t, val, "file_url must be null when no attachment was uploaded")
}

// The dispatcher is fire-and-forget at the HTTP level: a non-2xx response
// from the endpoint is not an error.
func TestWebhookNotifier_IgnoresResponseStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	notifier := notify.NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), notify.Submission{Status: "Submitted"})

	assert.NoError(t, err)
}

func TestWebhookNotifier_TransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // shut down before use

	notifier := notify.NewWebhookNotifier(server.URL)
	err := notifier.Notify(context.Background(), notify.Submission{Status: "Submitted"})

	assert.Error(t, err)
}
