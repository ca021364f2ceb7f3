package leadssuclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	leadssudomain "github.com/vfg2006/leadssu-webmaster/infrastructure/integrator/leadssu/domain"
	"github.com/vfg2006/leadssu-webmaster/internal/config"
	"golang.org/x/time/rate"
)

var codec = jsoniter.ConfigCompatibleWithStandardLibrary

const tokenParam = "token"

//go:generate mockgen -source=client.go -destination=../mocks/requester_mock.go -package=mocks
type Requester interface {
	Request(ctx context.Context, action string, params *Params) (*leadssudomain.Envelope, error)
}

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type LeadssuClient struct {
	token      string
	baseURL    *url.URL
	httpClient HTTPClient
	limiter    *rate.Limiter
}

type Option func(c *LeadssuClient)

func WithHTTPClient(httpClient HTTPClient) Option {
	return func(c *LeadssuClient) {
		c.httpClient = httpClient
	}
}

// WithRateLimit espaça as requisições. Não há nova tentativa em caso de falha.
func WithRateLimit(requestsPerSecond float64) Option {
	return func(c *LeadssuClient) {
		if requestsPerSecond > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), 1)
		}
	}
}

func NewClient(cfg *config.Config, opts ...Option) (Requester, error) {
	baseURL, err := url.Parse(cfg.Leadssu.URL)
	if err != nil {
		return nil, fmt.Errorf("leadssu: invalid base url: %w", err)
	}

	client := &LeadssuClient{
		token:      cfg.Leadssu.Token,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: cfg.Leadssu.Timeout},
	}

	WithRateLimit(cfg.Leadssu.RequestsPerSecond)(client)

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

// Request faz uma única chamada GET para a action e valida o envelope.
// O token sempre sobrescreve qualquer valor enviado pelo chamador.
func (c *LeadssuClient) Request(ctx context.Context, action string, params *Params) (*leadssudomain.Envelope, error) {
	query := params.Clone()
	query.Set(tokenParam, c.token)

	endpoint, err := c.baseURL.Parse(action)
	if err != nil {
		return nil, c.fail(TransportFailure, action, err)
	}
	safeURL := endpoint.String()
	endpoint.RawQuery = query.Encode()

	logrus.WithFields(logrus.Fields{
		"action": action,
		"params": params.Keys(),
	}).Debug("leadssu: sending request")

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, c.fail(TransportFailure, action, err)
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, c.fail(TransportFailure, action, redact(err, safeURL))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(TransportFailure, action, redact(err, safeURL))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, c.fail(TransportFailure, action, err)
	}

	var envelope leadssudomain.Envelope
	if err := codec.Unmarshal(body, &envelope); err != nil {
		return nil, c.fail(TransportFailure, action, fmt.Errorf("invalid response body (status %d): %w", resp.StatusCode, err))
	}

	if err := envelope.Validate(); err != nil {
		return nil, c.fail(EnvelopeFailure, action, err)
	}

	return &envelope, nil
}

func (c *LeadssuClient) fail(kind FailureKind, action string, err error) error {
	logrus.WithFields(logrus.Fields{
		"action": action,
		"kind":   kind,
		"error":  err.Error(),
	}).Error("leadssu: request failed")

	return &RequestError{Kind: kind, Action: action, Err: err}
}

// redact remove a query string (e o token) das mensagens de erro do net/http
func redact(err error, safeURL string) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &url.Error{Op: urlErr.Op, URL: safeURL, Err: urlErr.Err}
	}
	return err
}
