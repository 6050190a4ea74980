package dataset

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/jpillora/backoff"
	"github.com/raykavin/coinstats/pkg/core"
	"github.com/raykavin/coinstats/pkg/logger"
)

const (
	defaultRetries = 3
	maxBodySize    = 64 << 20
)

var errRetryable = errors.New("retryable fetch failure")

// Loader reads a coins document from a file or an http(s) URL and
// normalizes it
type Loader struct {
	client  *http.Client
	retries int
	backoff backoff.Backoff
	log     logger.Logger
}

// Option configures a Loader
type Option func(*Loader)

// WithHTTPClient sets the client used for URL sources
func WithHTTPClient(client *http.Client) Option {
	return func(l *Loader) {
		l.client = client
	}
}

// WithRetries sets how many times a failed URL fetch is attempted again
func WithRetries(retries int) Option {
	return func(l *Loader) {
		l.retries = retries
	}
}

// WithBackoff sets the delay bounds between fetch attempts
func WithBackoff(minDelay, maxDelay time.Duration) Option {
	return func(l *Loader) {
		l.backoff.Min = minDelay
		l.backoff.Max = maxDelay
	}
}

// NewLoader creates a loader with the provided options
func NewLoader(log logger.Logger, options ...Option) *Loader {
	loader := &Loader{
		client:  &http.Client{Timeout: 30 * time.Second},
		retries: defaultRetries,
		backoff: backoff.Backoff{
			Min:    200 * time.Millisecond,
			Max:    5 * time.Second,
			Factor: 2,
			Jitter: true,
		},
		log: log,
	}

	for _, option := range options {
		option(loader)
	}

	return loader
}

// Load fetches, decodes and normalizes the document at source
func (l *Loader) Load(ctx context.Context, source string) (core.SeriesCollection, error) {
	data, err := l.Fetch(ctx, source)
	if err != nil {
		return core.SeriesCollection{}, err
	}
	return l.build(source, data)
}

// LoadReader decodes and normalizes a document read from r
func (l *Loader) LoadReader(r io.Reader) (core.SeriesCollection, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBodySize))
	if err != nil {
		return core.SeriesCollection{}, fmt.Errorf("failed to read document: %w", err)
	}
	return l.build("reader", data)
}

func (l *Loader) build(source string, data []byte) (core.SeriesCollection, error) {
	doc, err := Decode(data)
	if err != nil {
		return core.SeriesCollection{}, fmt.Errorf("decode %s: %w", source, err)
	}

	collection, err := NormalizeDocument(doc)
	if err != nil {
		return core.SeriesCollection{}, fmt.Errorf("normalize %s: %w", source, err)
	}

	for _, coin := range collection.Coins() {
		series, _ := collection.Series(coin)
		l.log.WithFields(map[string]any{
			"coin":    coin,
			"points":  series.Length(),
			"dropped": len(doc.Records[coin]) - series.Length(),
		}).Debug("coin normalized")
	}
	l.log.Infof("Loaded %d coins from %s", collection.Len(), source)

	return collection, nil
}

// Fetch returns the raw bytes of a file path or an http(s) URL
func (l *Loader) Fetch(ctx context.Context, source string) ([]byte, error) {
	if !isURL(source) {
		data, err := os.ReadFile(source)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", source, err)
		}
		return data, nil
	}

	b := l.backoff
	b.Reset()

	for attempt := 0; ; attempt++ {
		data, err := l.get(ctx, source)
		if err == nil {
			return data, nil
		}

		if !errors.Is(err, errRetryable) || attempt >= l.retries {
			return nil, fmt.Errorf("failed to fetch %s: %w", source, err)
		}

		wait := b.Duration()
		l.log.WithError(err).Warnf("Fetch attempt %d failed, retrying in %s", attempt+1, wait)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(wait):
		}
	}
}

func (l *Loader) get(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := l.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, fmt.Errorf("%w: %v", errRetryable, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return nil, fmt.Errorf("%w: status %d", errRetryable, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	return io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
