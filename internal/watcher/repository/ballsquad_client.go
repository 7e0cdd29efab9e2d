package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/ssysek/orlik-bot2/internal/config"
	"github.com/ssysek/orlik-bot2/internal/models"
	"github.com/ssysek/orlik-bot2/internal/watcher/dto"
	"github.com/ssysek/orlik-bot2/pkg/logger"
)

const (
	discoverPath     = "/api/authenticate/discover"
	availabilityPath = "/api/availabilities/court/"

	userAgent = "Mozilla/5.0"
)

type ballsquadClient struct {
	httpClient     *http.Client
	baseURL        string
	origin         string
	courtID        int
	fromDate       string
	toDate         string
	timezoneOffset int
	logger         *logger.CanonicalLogger
}

// NewBallsquadClient creates the booking API client.
// Requests carry no client timeout of their own; ctx bounds them.
func NewBallsquadClient(cfg config.Config, log *logger.CanonicalLogger) IBallsquadClient {
	return &ballsquadClient{
		httpClient:     &http.Client{},
		baseURL:        strings.TrimRight(cfg.APIBaseURL, "/"),
		origin:         strings.TrimRight(cfg.AppOrigin, "/"),
		courtID:        cfg.CourtID,
		fromDate:       cfg.FromDateString(),
		toDate:         cfg.ToDateString(),
		timezoneOffset: cfg.TimezoneOffset,
		logger:         log.Component("ballsquad"),
	}
}

// Authenticate calls the discover endpoint, which hands out a token
// without credentials.
func (c *ballsquadClient) Authenticate(ctx context.Context) (string, error) {
	endpoint := c.baseURL + discoverPath

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Accept-Language", "en-GB,en;q=0.9")

	resp, err := c.do(req)
	if err != nil {
		return "", fmt.Errorf("authenticate request failed: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		herr := newHTTPError("authenticate", resp)
		c.logger.HTTPError(req.Method, req.URL.Path, resp.StatusCode, herr)
		return "", herr
	}

	var body dto.DiscoverResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", &DecodeError{Op: "authenticate", Err: err}
	}

	token, field, ok := body.Token()
	if !ok {
		c.logger.Warn("auth response carried no token; continuing without one",
			logger.Any("candidates", dto.TokenFields),
		)
		return "", nil
	}

	c.logger.Debug("token acquired", logger.String("field", field))
	return token, nil
}

// GetAvailabilities fetches the slot list. An empty token is still sent
// as "Bearer " and left for the API to reject.
func (c *ballsquadClient) GetAvailabilities(ctx context.Context, token string) (models.SlotList, error) {
	endpoint := c.availabilityURL()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	c.setCommonHeaders(req)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.do(req)
	if err != nil {
		return nil, fmt.Errorf("availabilities request failed: %w", err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		herr := newHTTPError("availabilities", resp)
		c.logger.HTTPError(req.Method, req.URL.Path, resp.StatusCode, herr)
		return nil, herr
	}

	var slots models.SlotList
	if err := json.NewDecoder(resp.Body).Decode(&slots); err != nil {
		return nil, &DecodeError{Op: "availabilities", Err: err}
	}

	return slots, nil
}

func (c *ballsquadClient) availabilityURL() string {
	q := url.Values{}
	q.Set("fromDate", c.fromDate)
	q.Set("toDate", c.toDate)
	return c.baseURL + availabilityPath + strconv.Itoa(c.courtID) + "?" + q.Encode()
}

func (c *ballsquadClient) setCommonHeaders(req *http.Request) {
	req.Header.Set("Accept", "*/*")
	req.Header.Set("Timezoneoffset", strconv.Itoa(c.timezoneOffset))
	req.Header.Set("Origin", c.origin)
	req.Header.Set("Referer", c.origin+"/")
	req.Header.Set("User-Agent", userAgent)
}

func (c *ballsquadClient) do(req *http.Request) (*http.Response, error) {
	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	c.logger.HTTP(req.Method, req.URL.Path, resp.StatusCode, time.Since(start).Milliseconds())
	return resp, nil
}
