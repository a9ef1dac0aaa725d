package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// HTTPAdapter posts translation requests to a remote JSON endpoint.
type HTTPAdapter struct {
	Endpoint string
	Client   *http.Client
}

func (h *HTTPAdapter) Name() string {
	return fmt.Sprintf("HTTP (%s)", h.Endpoint)
}

func (h *HTTPAdapter) Translate(ctx context.Context, tr Request) (Result, error) {
	body, err := json.Marshal(tr)
	if err != nil {
		return Result{}, fmt.Errorf("translate: marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.Endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("translate: create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := h.client().Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("translate: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{}, &StatusError{Code: resp.StatusCode, Text: statusText(resp)}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, fmt.Errorf("translate: read response: %w", err)
	}
	if !gjson.ValidBytes(data) {
		return Result{}, fmt.Errorf("translate: decode response: invalid JSON body")
	}

	doc := gjson.ParseBytes(data)
	if doc.Type == gjson.Null {
		return Result{}, fmt.Errorf("translate: decode response: null body")
	}
	if v, ok := lastField(doc, "translated_text"); ok && v.Type != gjson.Null {
		return Result{Text: v.String()}, nil
	}
	return Result{Text: doc.Get("@ugly").Raw, Fallback: true}, nil
}

// lastField returns the last occurrence of key in a JSON object; a repeated
// key resolves to its final value.
func lastField(doc gjson.Result, key string) (gjson.Result, bool) {
	var (
		found gjson.Result
		ok    bool
	)
	if !doc.IsObject() {
		return found, false
	}
	doc.ForEach(func(k, v gjson.Result) bool {
		if k.String() == key {
			found, ok = v, true
		}
		return true
	})
	return found, ok
}

// Available reports whether the endpoint answers at all. A POST-only route
// typically replies 405 to this GET, which still counts as reachable.
func (h *HTTPAdapter) Available() bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.Endpoint, nil)
	if err != nil {
		return false
	}

	resp, err := h.client().Do(req)
	if err != nil {
		return false
	}
	resp.Body.Close()
	return resp.StatusCode < http.StatusInternalServerError
}

func (h *HTTPAdapter) client() *http.Client {
	if h.Client == nil {
		return http.DefaultClient
	}
	return h.Client
}

// statusText strips the numeric code from resp.Status ("500 Internal Server Error").
func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
