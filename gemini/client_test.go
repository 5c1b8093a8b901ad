package gemini

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goccy/go-json"
)

func TestGenerate(t *testing.T) {
	var gotPath string
	var gotBody generateRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		json.NewDecoder(r.Body).Decode(&gotBody)
		json.NewEncoder(w).Encode(generateResponse{
			Candidates: []struct {
				Content content `json:"content"`
			}{
				{Content: content{Parts: []part{{Text: "The Classic 350 costs Rs 185000."}}}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", "gemini-2.0-flash-exp")
	c.baseURL = srv.URL

	got, err := c.Generate(context.Background(), "How much is the Classic 350?", "Showroom inventory: ...")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if got != "The Classic 350 costs Rs 185000." {
		t.Errorf("response = %q", got)
	}

	if gotPath != "/models/gemini-2.0-flash-exp:generateContent" {
		t.Errorf("path = %q", gotPath)
	}
	text := gotBody.Contents[0].Parts[0].Text
	if !strings.Contains(text, "Showroom inventory") || !strings.Contains(text, "How much is the Classic 350?") {
		t.Errorf("prompt did not include context and query: %q", text)
	}
}

func TestGenerateUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewHTTPClient("test-key", "")
	c.baseURL = srv.URL

	if _, err := c.Generate(context.Background(), "hello", ""); !errors.Is(err, ErrGenerateFailed) {
		t.Errorf("err = %v, want ErrGenerateFailed", err)
	}
}

func TestGenerateWithoutKey(t *testing.T) {
	c := NewHTTPClient("", "")

	if _, err := c.Generate(context.Background(), "hello", ""); !errors.Is(err, ErrGenerateFailed) {
		t.Errorf("err = %v, want ErrGenerateFailed", err)
	}
}
