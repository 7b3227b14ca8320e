package wikidata

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/imathiatour/poi-server/internal/config"
	apperrors "github.com/imathiatour/poi-server/internal/errors"
	"github.com/rs/zerolog/log"
)

// languagePreference is the label/description language filter sent with
// every entity request.
const languagePreference = "el|en"

// Client fetches raw entity records from the Wikidata API. Each call is a
// single bounded request; there is no retry, no backoff and no caching, so
// repeated requests for the same entity repeat the fetch in full.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// ClientOption defines a function type to modify the Client instance.
type ClientOption func(*Client)

// WithHTTPClient replaces the default HTTP client (primarily for testing)
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// NewClient creates a Wikidata client from configuration.
func NewClient(cfg config.WikidataConfig, options ...ClientOption) *Client {
	c := &Client{
		baseURL: cfg.GetWikidataBaseURL(),
		httpClient: &http.Client{
			Timeout: cfg.GetWikidataTimeout(),
		},
	}

	for _, opt := range options {
		opt(c)
	}

	return c
}

type entitiesResponse struct {
	Entities map[string]json.RawMessage `json:"entities"`
	Error    *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// Fetch retrieves the raw entity record for a Wikidata item. Network
// failures, non-2xx responses and malformed or missing payloads all
// surface as ErrUpstream.
func (c *Client) Fetch(ctx context.Context, qid string) (*Entity, error) {
	params := url.Values{}
	params.Set("action", "wbgetentities")
	params.Set("ids", qid)
	params.Set("format", "json")
	params.Set("languages", languagePreference)
	params.Set("origin", "*")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] building request for %s: %v", qid, err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Warn().Str("qid", qid).Err(err).Msg("wikidata request failed")
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] request for %s: %v", qid, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		log.Warn().Str("qid", qid).Int("status", resp.StatusCode).Msg("wikidata non-success status")
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] %s returned status %d", qid, resp.StatusCode)
	}

	var payload entitiesResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] decoding response for %s: %v", qid, err)
	}
	if payload.Error != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] api error for %s: %s", qid, payload.Error.Info)
	}

	raw, ok := payload.Entities[qid]
	if !ok {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] entity %s missing from response", qid)
	}

	var entity Entity
	if err := json.Unmarshal(raw, &entity); err != nil {
		return nil, apperrors.Wrapf(apperrors.ErrUpstream, "[Fetch] decoding entity %s: %v", qid, err)
	}

	log.Debug().Str("qid", qid).Dur("took", time.Since(start)).Msg("wikidata entity fetched")
	return &entity, nil
}
