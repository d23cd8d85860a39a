package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/vidboard/video-annotation-go/internal/models"
)

func TestYouTubeHandler_GetVideo(t *testing.T) {
	provider := newFakeProvider()
	provider.addVideo("vid1", "Provider Title", "UCchan1", "Channel One")
	router := newTestRouter(provider, newFakeStore(provider))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/youtube?videoId=vid1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("GetVideo() status = %d, want %d, body = %s", w.Code, http.StatusOK, w.Body.String())
	}

	var view models.VideoView
	if err := json.Unmarshal(w.Body.Bytes(), &view); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if view.VideoID != "vid1" {
		t.Errorf("GetVideo() videoId = %q, want %q", view.VideoID, "vid1")
	}
	if view.Title != "Provider Title" {
		t.Errorf("GetVideo() title = %q, want %q", view.Title, "Provider Title")
	}
	if view.ChannelThumbnail == "" {
		t.Error("GetVideo() channelThumbnail is empty")
	}
}

func TestYouTubeHandler_GetVideo_MissingVideoID(t *testing.T) {
	provider := newFakeProvider()
	router := newTestRouter(provider, newFakeStore(provider))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/youtube", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusBadRequest {
		t.Errorf("GetVideo() status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestYouTubeHandler_GetVideo_Unknown(t *testing.T) {
	provider := newFakeProvider()
	router := newTestRouter(provider, newFakeStore(provider))

	w := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/youtube?videoId=missing-vid1", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNotFound {
		t.Errorf("GetVideo() status = %d, want %d", w.Code, http.StatusNotFound)
	}

	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.Error != "Not Found" {
		t.Errorf("GetVideo() error = %q, want %q", resp.Error, "Not Found")
	}
}
