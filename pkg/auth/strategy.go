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

package auth

//go:generate mockgen -source=strategy.go -destination=mock/interfaces.go -package=mock

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	// ErrMissingCredential is raised when a strategy is constructed without
	// a credential.
	ErrMissingCredential = errors.New("credential is empty")

	// ErrUnknownScheme is raised when New is asked for a scheme it
	// doesn't know about.
	ErrUnknownScheme = errors.New("unknown authentication scheme")
)

const (
	// SchemeBearer selects BearerAuth.
	SchemeBearer = "bearer"
	// SchemeOAuth selects OAuthToken.
	SchemeOAuth = "oauth"
	// SchemeAPIKey selects APIKeyAuth.
	SchemeAPIKey = "apikey"

	// OAuthTokenHeader is the header OAuthToken writes.
	OAuthTokenHeader = "OAUTH-TOKEN"

	redacted = "****"
)

// Strategy attaches authentication headers to an outgoing request.
// Implementations set headers, they never append, so decorating a request
// twice leaves it in the same state.
type Strategy interface {
	// Decorate sets the strategy's headers on the request and returns
	// the same request.
	Decorate(r *http.Request) *http.Request
}

// New returns the strategy registered for scheme, wrapping credential.
func New(scheme, credential string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(scheme)) {
	case SchemeBearer:
		return NewBearerAuth(credential)
	case SchemeOAuth:
		return NewOAuthToken(credential)
	case SchemeAPIKey:
		return NewAPIKeyAuth(credential)
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownScheme, scheme)
}

func checkCredential(credential string) error {
	if credential == "" {
		return ErrMissingCredential
	}

	return nil
}

// BearerAuth sends the credential as an RFC 6750 bearer token and asks
// for a JSON response.
type BearerAuth struct {
	token string
}

var _ Strategy = &BearerAuth{}

func NewBearerAuth(token string) (*BearerAuth, error) {
	if err := checkCredential(token); err != nil {
		return nil, fmt.Errorf("bearer auth: %w", err)
	}

	return &BearerAuth{
		token: token,
	}, nil
}

func (a *BearerAuth) Decorate(r *http.Request) *http.Request {
	if r == nil {
		return nil
	}

	r.Header.Set("Authorization", "Bearer "+a.token)
	r.Header.Set("Accept", "application/json")

	return r
}

func (a *BearerAuth) String() string {
	return "Bearer " + redacted
}

// OAuthToken sends the credential verbatim in the OAUTH-TOKEN header.
type OAuthToken struct {
	token string
}

var _ Strategy = &OAuthToken{}

func NewOAuthToken(token string) (*OAuthToken, error) {
	if err := checkCredential(token); err != nil {
		return nil, fmt.Errorf("oauth token: %w", err)
	}

	return &OAuthToken{
		token: token,
	}, nil
}

func (a *OAuthToken) Decorate(r *http.Request) *http.Request {
	if r == nil {
		return nil
	}

	r.Header.Set(OAuthTokenHeader, a.token)

	return r
}

func (a *OAuthToken) String() string {
	return OAuthTokenHeader + " " + redacted
}

// APIKeyAuth sends the credential with the ApiKey authorization scheme.
type APIKeyAuth struct {
	key string
}

var _ Strategy = &APIKeyAuth{}

func NewAPIKeyAuth(key string) (*APIKeyAuth, error) {
	if err := checkCredential(key); err != nil {
		return nil, fmt.Errorf("api key auth: %w", err)
	}

	return &APIKeyAuth{
		key: key,
	}, nil
}

func (a *APIKeyAuth) Decorate(r *http.Request) *http.Request {
	if r == nil {
		return nil
	}

	r.Header.Set("Authorization", "ApiKey "+a.key)

	return r
}

func (a *APIKeyAuth) String() string {
	return "ApiKey " + redacted
}
