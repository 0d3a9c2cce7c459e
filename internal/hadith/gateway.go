// Package hadith fetches random hadith from the random-hadith-generator API
// and maps them onto model.Hadith.
package hadith

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/shueibka/Daily-Islamic-Wisdom/internal/apperr"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/metrics"
	"github.com/shueibka/Daily-Islamic-Wisdom/internal/model"
)

// DefaultBaseURL is the public random-hadith-generator deployment.
const DefaultBaseURL = "https://random-hadith-generator.vercel.app"

const (
	service         = "hadith"
	maxResponseSize = 1 << 20
)

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Gateway fetches one hadith per call. It does not retry or cache.
type Gateway struct {
	baseURL    string
	httpClient *http.Client
	rnd        Rand
}

// Option configures a Gateway.
type Option func(*Gateway)

// WithHTTPClient sets the HTTP client used for upstream calls.
func WithHTTPClient(c *http.Client) Option {
	return func(g *Gateway) {
		g.httpClient = c
	}
}

// WithRand sets the source used to choose a collection in FetchRandom.
func WithRand(r Rand) Option {
	return func(g *Gateway) {
		g.rnd = r
	}
}

// NewGateway creates a Gateway rooted at baseURL. An empty baseURL uses DefaultBaseURL.
func NewGateway(baseURL string, opts ...Option) *Gateway {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	g := &Gateway{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: http.DefaultClient,
		rnd:        globalRand{},
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// FetchRandom picks Bukhari or Muslim with equal probability and fetches from it.
func (g *Gateway) FetchRandom(ctx context.Context) (*model.Hadith, error) {
	return g.FetchFromCollection(ctx, PickCollection(g.rnd))
}

// FetchBukhari fetches a random hadith from Sahih al-Bukhari.
func (g *Gateway) FetchBukhari(ctx context.Context) (*model.Hadith, error) {
	return g.FetchFromCollection(ctx, CollectionBukhari)
}

// FetchMuslim fetches a random hadith from Sahih Muslim.
func (g *Gateway) FetchMuslim(ctx context.Context) (*model.Hadith, error) {
	return g.FetchFromCollection(ctx, CollectionMuslim)
}

// FetchFromCollection fetches a random hadith from c.
// Failures are *apperr.GatewayError or *apperr.ParseError and never come with a Hadith.
func (g *Gateway) FetchFromCollection(ctx context.Context, c Collection) (*model.Hadith, error) {
	started := time.Now()
	url := g.baseURL + c.Path()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperr.NewTransportError(service, fmt.Errorf("create request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := g.httpClient.Do(req)
	if err != nil {
		metrics.ObserveUpstream(service, metrics.OutcomeTransport, started)
		log.Error().Err(err).Str("collection", c.String()).Msg("[hadith] request failed")
		return nil, apperr.NewTransportError(service, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		metrics.ObserveUpstream(service, metrics.OutcomeTransport, started)
		return nil, apperr.NewTransportError(service, fmt.Errorf("read body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		metrics.ObserveUpstream(service, metrics.OutcomeStatus, started)
		excerpt := strings.TrimSpace(apperr.Truncate(body, 200))
		log.Error().
			Int("status", resp.StatusCode).
			Str("collection", c.String()).
			Str("body", excerpt).
			Msg("[hadith] upstream error")
		var detail error
		if excerpt != "" {
			detail = errors.New(excerpt)
		}
		return nil, apperr.NewStatusError(service, resp.StatusCode, detail)
	}

	h, err := decodeHadith(body, c)
	if err != nil {
		metrics.ObserveUpstream(service, metrics.OutcomeParse, started)
		log.Error().Err(err).Str("collection", c.String()).Msg("[hadith] unexpected response shape")
		return nil, apperr.NewParseError(service, err)
	}

	metrics.ObserveUpstream(service, metrics.OutcomeSuccess, started)
	log.Debug().Str("collection", c.String()).Str("id", h.ID).Msg("[hadith] fetched")
	return h, nil
}
