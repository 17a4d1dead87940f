/*
Copyright 2026 the Airport Gap Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

//nolint:err113,revive // dynamic errors and naming conventions acceptable in test code
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/onsi/ginkgo/v2"

	"github.com/airportgap/apitest/pkg/auth"
)

type APIClient struct {
	baseURL   string
	client    *http.Client
	config    *TestConfig
	endpoints *Endpoints
}

func NewAPIClientWithConfig(config *TestConfig) *APIClient {
	return newAPIClientWithConfig(config, config.BaseURL)
}

// common constructor logic.
func newAPIClientWithConfig(config *TestConfig, baseURL string) *APIClient {
	return &APIClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: config.RequestTimeout,
		},
		config:    config,
		endpoints: NewEndpoints(),
	}
}

// logError logs a generic error with trace context.
func (c *APIClient) logError(method, path string, duration time.Duration, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s traceparent=%s error=%v\n", method, path, context, duration, traceParent, err)
	c.logTraceContext(traceParent)
}

// logErrorWithStatus logs an error with HTTP status code.
func (c *APIClient) logErrorWithStatus(method, path string, duration time.Duration, statusCode int, traceParent string, err error, context string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] ERROR %s duration=%s status=%d traceparent=%s error=%v\n", method, path, context, duration, statusCode, traceParent, err)
	c.logTraceContext(traceParent)
}

// logUnexpectedStatus logs an unexpected HTTP status code.
func (c *APIClient) logUnexpectedStatus(method, path string, expectedStatus, actualStatus int, body, traceParent string) {
	ginkgo.GinkgoWriter.Printf("[%s %s] UNEXPECTED STATUS expected=%d got=%d body=%s traceparent=%s\n", method, path, expectedStatus, actualStatus, body, traceParent)
	c.logTraceContext(traceParent)
}

// logTraceContext logs the trace context information.
func (c *APIClient) logTraceContext(traceParent string) {
	ginkgo.GinkgoWriter.Printf("TRACE CONTEXT: Use trace ID '%s' to search logs for this request\n", extractTraceID(traceParent))
}

// randomHex returns n random bytes, hex encoded.
func randomHex(n int) string {
	bytes := make([]byte, n)
	_, _ = rand.Read(bytes)

	return hex.EncodeToString(bytes)
}

// createTraceParent creates a W3C traceparent header value.
// Every request gets a fresh trace so a failure can be found in the server logs.
func createTraceParent() string {
	return fmt.Sprintf("00-%s-%s-01", randomHex(16), randomHex(8))
}

// extractTraceID extracts the trace ID from a traceparent header value.
func extractTraceID(traceParent string) string {
	parts := strings.Split(traceParent, "-")
	if len(parts) >= 2 {
		return parts[1]
	}

	return traceParent
}

// doRequest sends a request, form encoding any payload and decorating it with
// the strategy if one is given. Transport failures are returned as errors,
// as is a status that doesn't match expectedStatus when that is non-zero.
//
//nolint:cyclop // test code complexity is acceptable
func (c *APIClient) doRequest(ctx context.Context, method, path string, payload url.Values, strategy auth.Strategy, expectedStatus int) (*Response, error) {
	fullURL := c.baseURL + path

	var body io.Reader

	if payload != nil {
		body = strings.NewReader(payload.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	// Add W3C Trace Context headers
	traceParent := createTraceParent()
	req.Header.Set("Traceparent", traceParent)
	req.Header.Set("Tracestate", "test-automation=ginkgo")

	if payload != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	if strategy != nil {
		req = strategy.Decorate(req)
	}

	start := time.Now()
	resp, err := c.client.Do(req)
	duration := time.Since(start)

	if err != nil {
		c.logError(method, path, duration, traceParent, err, "http request failed")
		return nil, fmt.Errorf("http request failed: %w", err)
	}

	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logErrorWithStatus(method, path, duration, resp.StatusCode, traceParent, err, "reading response body")
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	if c.config.LogRequests {
		ginkgo.GinkgoWriter.Printf("[%s %s] status=%d duration=%s traceparent=%s\n", method, path, resp.StatusCode, duration, traceParent)
	}

	if c.config.LogResponses && len(respBody) > 0 {
		ginkgo.GinkgoWriter.Printf("[%s %s] response body: %s\n", method, path, string(respBody))
	}

	response := &Response{
		StatusCode: resp.StatusCode,
		Header:     resp.Header,
		Body:       respBody,
		TraceID:    extractTraceID(traceParent),
	}

	if expectedStatus > 0 && resp.StatusCode != expectedStatus {
		c.logUnexpectedStatus(method, path, expectedStatus, resp.StatusCode, string(respBody), traceParent)
		return response, fmt.Errorf("unexpected status code: expected %d, got %d, body: %s (trace ID: %s)", expectedStatus, resp.StatusCode, string(respBody), response.TraceID)
	}

	return response, nil
}

// ListAirports returns the first page of airports.
func (c *APIClient) ListAirports(ctx context.Context) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListAirports(), nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("listing airports: %w", err)
	}

	return resp, nil
}

// ListAirportsPage returns the requested page of airports.
func (c *APIClient) ListAirportsPage(ctx context.Context, page int) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListAirportsPage(page), nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("listing airports page %d: %w", page, err)
	}

	return resp, nil
}

func (c *APIClient) GetAirport(ctx context.Context, airportID string) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetAirport(airportID), nil, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("getting airport %s: %w", airportID, err)
	}

	return resp, nil
}

// CalculateDistance asks for the distance between the payload's from and
// to airports.
func (c *APIClient) CalculateDistance(ctx context.Context, payload url.Values) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CalculateDistance(), payload, nil, 0)
	if err != nil {
		return nil, fmt.Errorf("calculating distance: %w", err)
	}

	return resp, nil
}

func (c *APIClient) ListFavorites(ctx context.Context, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListFavorites(), nil, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	return resp, nil
}

// ListFavoritesPage returns the requested page of favorites.
func (c *APIClient) ListFavoritesPage(ctx context.Context, page int, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.ListFavoritesPage(page), nil, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("listing favorites page %d: %w", page, err)
	}

	return resp, nil
}

// CreateFavorite saves a favorite airport. A nil strategy sends the request
// unauthenticated.
func (c *APIClient) CreateFavorite(ctx context.Context, payload url.Values, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPost, c.endpoints.CreateFavorite(), payload, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("creating favorite: %w", err)
	}

	return resp, nil
}

func (c *APIClient) GetFavorite(ctx context.Context, favoriteID string, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, c.endpoints.GetFavorite(favoriteID), nil, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("getting favorite %s: %w", favoriteID, err)
	}

	return resp, nil
}

func (c *APIClient) UpdateFavorite(ctx context.Context, favoriteID string, payload url.Values, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodPut, c.endpoints.UpdateFavorite(favoriteID), payload, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("updating favorite %s: %w", favoriteID, err)
	}

	return resp, nil
}

func (c *APIClient) DeleteFavorite(ctx context.Context, favoriteID string, strategy auth.Strategy) (*Response, error) {
	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteFavorite(favoriteID), nil, strategy, 0)
	if err != nil {
		return nil, fmt.Errorf("deleting favorite %s: %w", favoriteID, err)
	}

	return resp, nil
}

// DeleteFavoriteIfExists removes a favorite, treating an already absent one
// as success. It backs cleanup of favorites left behind by failed scenarios.
func (c *APIClient) DeleteFavoriteIfExists(ctx context.Context, favoriteID string, strategy auth.Strategy) error {
	resp, err := c.doRequest(ctx, http.MethodDelete, c.endpoints.DeleteFavorite(favoriteID), nil, strategy, http.StatusNoContent)
	if err != nil {
		if resp != nil && resp.StatusCode == http.StatusNotFound {
			return nil
		}

		return fmt.Errorf("deleting favorite %s: %w", favoriteID, err)
	}

	return nil
}
