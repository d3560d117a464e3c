package oai

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestCreateImages_PostsWireContract(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		if r.URL.Path != "/v1/images" {
			t.Fatalf("unexpected path: %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-123" {
			t.Fatalf("unexpected auth header: %q", got)
		}
		if got := r.Header.Get("Content-Type"); got != "application/json" {
			t.Fatalf("unexpected content type: %q", got)
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"b64_json": "aGk="}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-123", 5*time.Second)
	resp, err := c.CreateImages(context.Background(), ImagesRequest{
		Model: "gpt-image-1", Prompt: "tiny", Size: "auto", N: 1,
	})
	if err != nil {
		t.Fatalf("CreateImages: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].B64JSON != "aGk=" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if captured["model"] != "gpt-image-1" || captured["prompt"] != "tiny" || captured["size"] != "auto" || captured["n"].(float64) != 1 {
		t.Fatalf("unexpected payload: %+v", captured)
	}
	for _, key := range []string{"quality", "style", "response_format"} {
		if _, ok := captured[key]; ok {
			t.Fatalf("expected %q omitted from payload: %+v", key, captured)
		}
	}
}

func TestCreateImages_SendsOptionalFieldsWhenSet(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			t.Fatalf("bad json: %v", err)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"b64_json": "aGk="}},
		})
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-123", 5*time.Second)
	_, err := c.CreateImages(context.Background(), ImagesRequest{
		Model: "dall-e-3", Prompt: "tiny", Size: "1024x1024", N: 2,
		Quality: "hd", Style: "vivid", ResponseFormat: ResponseFormatB64JSON,
	})
	if err != nil {
		t.Fatalf("CreateImages: %v", err)
	}
	if captured["quality"] != "hd" || captured["style"] != "vivid" || captured["response_format"] != "b64_json" {
		t.Fatalf("expected optional fields on the wire: %+v", captured)
	}
}

func TestCreateImages_NonSuccessStatusIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-123", 5*time.Second)
	_, err := c.CreateImages(context.Background(), ImagesRequest{Model: "m", Prompt: "p", Size: "auto", N: 1})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
	if !strings.Contains(err.Error(), "500") || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected status and body in message, got %q", err.Error())
	}
}

func TestCreateImages_NetworkErrorIsTransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	c := NewClient(url, "test-123", 2*time.Second)
	_, err := c.CreateImages(context.Background(), ImagesRequest{Model: "m", Prompt: "p", Size: "auto", N: 1})
	var terr *TransportError
	if !errors.As(err, &terr) {
		t.Fatalf("expected TransportError, got %v", err)
	}
}

func TestCreateImages_UndecodableBodyIsMalformedResponse(t *testing.T) {
	cases := []struct {
		name string
		body string
	}{
		{"not json", "definitely not json"},
		{"top-level array", `[{"b64_json":"aGk="}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, "test-123", 5*time.Second)
			_, err := c.CreateImages(context.Background(), ImagesRequest{Model: "m", Prompt: "p", Size: "auto", N: 1})
			var merr *MalformedResponseError
			if !errors.As(err, &merr) {
				t.Fatalf("expected MalformedResponseError, got %v", err)
			}
		})
	}
}

func TestDownloadImage_ReturnsExactBytes(t *testing.T) {
	want := []byte{0x89, 0x50, 0x4e, 0x47, 0x00, 0x01}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("unexpected method: %s", r.Method)
		}
		_, _ = w.Write(want)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-123", 5*time.Second)
	got, err := c.DownloadImage(context.Background(), srv.URL+"/img.png")
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	if string(got) != string(want) {
		t.Fatalf("bytes mismatch: got %v want %v", got, want)
	}
}

func TestDownloadImage_NonSuccessStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-123", 5*time.Second)
	if _, err := c.DownloadImage(context.Background(), srv.URL+"/missing.png"); err == nil {
		t.Fatalf("expected error for 404")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	c := NewClient("https://api.example.test/", "k", time.Second)
	if got := c.ImagesEndpoint(); got != "https://api.example.test/v1/images" {
		t.Fatalf("unexpected endpoint: %q", got)
	}
}
