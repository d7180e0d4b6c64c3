package nvp

import (
	"io"
	"net/http"
	"strings"
	"time"
)

// Transport performs the outbound POST to the processor. It is an external
// collaborator so tests can stub the wire; timeouts live here, not in the
// clients built on top of it.
type Transport interface {
	Post(host, path, body string) (int, string, error)
}

type HTTPTransport struct {
	client *http.Client
}

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		client: &http.Client{
			Timeout: 30 * time.Second,
			Transport: &http.Transport{
				MaxIdleConns:        64,
				MaxIdleConnsPerHost: 16,
				IdleConnTimeout:     30 * time.Second,
			},
		},
	}
}

func (t *HTTPTransport) Post(host, path, body string) (int, string, error) {
	req, err := http.NewRequest(http.MethodPost, "https://"+host+path, strings.NewReader(body))
	if err != nil {
		return 0, "", err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.client.Do(req)
	if err != nil {
		return 0, "", err
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, "", err
	}
	return resp.StatusCode, string(content), nil
}
