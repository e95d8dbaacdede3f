package capability

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// maxMediaBytes caps downloads; channel attachments are a few MB at most.
const maxMediaBytes = 20 << 20

// Media is a downloaded attachment.
type Media struct {
	Data        []byte
	ContentType string
}

// twilioDomain hosts Twilio media; only its hosts receive the Twilio credentials.
const twilioDomain = "twilio.com"

// MediaFetcher downloads attachments from the channel's media URLs. Twilio
// media URLs need HTTP basic auth with the account SID and auth token; URLs
// from other channels (Telegram file links) are fetched without credentials.
type MediaFetcher struct {
	client      *http.Client
	username    string
	password    string
	authDomains []string
}

func NewMediaFetcher(username, password string) *MediaFetcher {
	return &MediaFetcher{
		client:      &http.Client{Timeout: 30 * time.Second},
		username:    username,
		password:    password,
		authDomains: []string{twilioDomain},
	}
}

// sendsCredentials reports whether host is one of the auth domains or a
// subdomain of one.
func (f *MediaFetcher) sendsCredentials(host string) bool {
	host = strings.ToLower(host)
	for _, domain := range f.authDomains {
		if host == domain || strings.HasSuffix(host, "."+domain) {
			return true
		}
	}
	return false
}

func (f *MediaFetcher) Fetch(ctx context.Context, mediaURL string) (*Media, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create media request: %w", err)
	}
	if f.username != "" && f.sendsCredentials(req.URL.Hostname()) {
		req.SetBasicAuth(f.username, f.password)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download media: unexpected status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read media: %w", err)
	}
	if len(data) > maxMediaBytes {
		return nil, fmt.Errorf("media exceeds %d bytes", maxMediaBytes)
	}

	return &Media{
		Data:        data,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
