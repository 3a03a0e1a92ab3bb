package fetcher

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/phambaophuc/pixel-color/internal/config"
)

func testConfig() config.FetchConfig {
	return config.FetchConfig{
		Timeout:   5 * time.Second,
		MaxBytes:  1024,
		UserAgent: "pixel-color-test",
	}
}

func TestDownloadReturnsBody(t *testing.T) {
	payload := []byte("\x89PNG raw bytes")
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		w.Write(payload)
	}))
	defer srv.Close()

	d := NewDownloader(testConfig(), nil)
	data, err := d.Download(context.Background(), srv.URL+"/image.png")
	if err != nil {
		t.Fatalf("Download: %v", err)
	}
	if !bytes.Equal(data, payload) {
		t.Errorf("body = %q, want %q", data, payload)
	}
	if gotUA != "pixel-color-test" {
		t.Errorf("user agent = %q", gotUA)
	}
}

func TestDownloadRejectsNon2xx(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	d := NewDownloader(testConfig(), nil)
	_, err := d.Download(context.Background(), srv.URL)
	if err == nil {
		t.Fatal("expected error for 404")
	}
	if err.Error() != "Request failed with status code 404" {
		t.Errorf("error = %q", err.Error())
	}
}

func TestDownloadEnforcesSizeLimit(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "declared length",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Length", "4096")
				w.Write(bytes.Repeat([]byte("a"), 4096))
			},
		},
		{
			name: "chunked",
			handler: func(w http.ResponseWriter, r *http.Request) {
				for i := 0; i < 4; i++ {
					w.Write(bytes.Repeat([]byte("a"), 1024))
					w.(http.Flusher).Flush()
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			d := NewDownloader(testConfig(), nil)
			_, err := d.Download(context.Background(), srv.URL)
			if err == nil || !strings.Contains(err.Error(), "exceeds 1024 bytes") {
				t.Fatalf("expected size error, got %v", err)
			}
		})
	}
}

func TestDownloadConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	d := NewDownloader(testConfig(), nil)
	if _, err := d.Download(context.Background(), url); err == nil {
		t.Fatal("expected error for closed server")
	}
}

func TestDownloadHonoursContext(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	d := NewDownloader(testConfig(), nil)
	if _, err := d.Download(ctx, srv.URL); err == nil {
		t.Fatal("expected context error")
	}
}

func TestDownloadMalformedURL(t *testing.T) {
	d := NewDownloader(testConfig(), nil)
	if _, err := d.Download(context.Background(), "http://[::1"); err == nil {
		t.Fatal("expected error for malformed URL")
	}
}
