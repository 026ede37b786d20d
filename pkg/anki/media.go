package anki

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
)

type sourceKind int

const (
	// sourceEmpty is the zero kind, used only while a builder consumes
	// staging state. It must never reach resolve.
	sourceEmpty sourceKind = iota
	sourceData
	sourceURL
	sourcePath
)

// MediaSource is a tagged variant over the three ways a media byte payload can
// be specified: inline bytes, a remote URL, or a validated local file path.
type MediaSource struct {
	kind sourceKind
	data []byte
	url  string
	path string
}

// DataSource wraps raw bytes as an inline media source.
func DataSource(data []byte) MediaSource {
	return MediaSource{kind: sourceData, data: data}
}

// URLSource wraps a remote URL whose body becomes the media payload.
func URLSource(rawURL string) MediaSource {
	return MediaSource{kind: sourceURL, url: rawURL}
}

// PathSource wraps a local file path. The file must exist at construction
// time; reading happens at resolution.
func PathSource(path string) (MediaSource, error) {
	if _, err := os.Stat(path); err != nil {
		return MediaSource{}, &FileError{Path: path, Err: err}
	}
	return MediaSource{kind: sourcePath, path: path}, nil
}

// SourceFromString coerces a free-form string into a media source. The
// precedence is fixed: an existing local path wins over a well-formed URL,
// which wins over treating the string's raw bytes as inline data. The order
// matters because a string can be valid as more than one kind.
func SourceFromString(s string) MediaSource {
	if src, err := PathSource(s); err == nil {
		return src
	}
	if u, err := url.Parse(s); err == nil && u.Scheme != "" && u.Host != "" {
		return URLSource(u.String())
	}
	return DataSource([]byte(s))
}

// resolve turns the source into an owned byte payload. Inline data is copied,
// URLs are fetched through the injected client, and paths are read from disk.
func (s MediaSource) resolve(ctx context.Context, client *http.Client) ([]byte, error) {
	switch s.kind {
	case sourceData:
		out := make([]byte, len(s.data))
		copy(out, s.data)
		return out, nil
	case sourceURL:
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
		if err != nil {
			return nil, &TransportError{Op: "fetch " + s.url, Err: err}
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, &TransportError{Op: "fetch " + s.url, Err: err}
		}
		defer resp.Body.Close()
		if resp.StatusCode >= 400 {
			return nil, &TransportError{Op: "fetch " + s.url, Err: fmt.Errorf("status %d", resp.StatusCode)}
		}
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, &TransportError{Op: "fetch " + s.url, Err: err}
		}
		return body, nil
	case sourcePath:
		b, err := os.ReadFile(s.path)
		if err != nil {
			return nil, &FileError{Path: s.path, Err: err}
		}
		return b, nil
	default:
		panic("anki: resolve called on an empty media source")
	}
}

// Media is one attachment on a note. Data is what actually crosses the wire
// (base64-encoded by the JSON codec); URL and Path are resolution sources
// consumed client-side so AnkiConnect never downloads anything itself.
type Media struct {
	Filename string       `json:"filename"`
	Data     []byte       `json:"data,omitempty"`
	URL      *MediaSource `json:"-"`
	Path     *MediaSource `json:"-"`
	Fields   []string     `json:"fields"`
	SkipHash string       `json:"skipHash,omitempty"`
}

// resolveData fills Data from the item's sources. Precedence: URL over Path
// over pre-supplied inline data. Having none of the three is an error.
func (m *Media) resolveData(ctx context.Context, client *http.Client) error {
	var src *MediaSource
	switch {
	case m.URL != nil:
		src = m.URL
	case m.Path != nil:
		src = m.Path
	case len(m.Data) > 0:
		return nil
	default:
		return &MissingMediaError{Filename: m.Filename}
	}
	data, err := src.resolve(ctx, client)
	if err != nil {
		return err
	}
	m.Data = data
	return nil
}
