package wizard

import (
	"context"
	"net/http"
	"time"

	"github.com/pkg/errors"
)

// HTTPLauncher "opens" the provider deep-link by probing it, confirming
// the payment session exists before the user is pointed at it.
type HTTPLauncher struct {
	client *http.Client
}

func NewHTTPLauncher() *HTTPLauncher {
	return &HTTPLauncher{client: &http.Client{Timeout: 10 * time.Second}}
}

func (l *HTTPLauncher) Open(ctx context.Context, url string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, http.NoBody)
	if err != nil {
		return err
	}
	resp, err := l.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= http.StatusBadRequest {
		return errors.Errorf("payment url responded %s", resp.Status)
	}
	return nil
}
