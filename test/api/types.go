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

package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
)

// Response is a received HTTP response with its body fully read.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
	TraceID    string
}

// Decode parses the response body as a JSON document of type T.
func Decode[T any](resp *Response) (*T, error) {
	if len(resp.Body) == 0 {
		return nil, fmt.Errorf("decoding response (trace ID: %s): empty body", resp.TraceID)
	}

	var out T

	if err := json.Unmarshal(resp.Body, &out); err != nil {
		return nil, fmt.Errorf("decoding response (trace ID: %s): %w", resp.TraceID, err)
	}

	return &out, nil
}

// ResourceID is a server issued identifier. The API emits it as a string,
// numbers are accepted too.
type ResourceID string

func (r *ResourceID) UnmarshalJSON(data []byte) error {
	if bytes.HasPrefix(data, []byte(`"`)) {
		var s string

		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		*r = ResourceID(s)

		return nil
	}

	var n json.Number

	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("resource id is neither a string nor a number: %w", err)
	}

	*r = ResourceID(n.String())

	return nil
}

func (r ResourceID) String() string {
	return string(r)
}

// Links are the pagination links of a collection.
type Links struct {
	First string `json:"first"`
	Self  string `json:"self"`
	Last  string `json:"last"`
	Prev  string `json:"prev"`
	Next  string `json:"next"`
}

type AirportAttributes struct {
	Name      string `json:"name"`
	City      string `json:"city"`
	Country   string `json:"country"`
	IATA      string `json:"iata"`
	ICAO      string `json:"icao"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
	Altitude  int    `json:"altitude"`
	Timezone  string `json:"timezone"`
}

type Airport struct {
	ID         ResourceID        `json:"id"`
	Type       string            `json:"type"`
	Attributes AirportAttributes `json:"attributes"`
}

type AirportList struct {
	Data  []Airport `json:"data"`
	Links Links     `json:"links"`
}

type AirportDocument struct {
	Data Airport `json:"data"`
}

// Distance keeps its attributes untyped so callers can check which
// keys were actually sent.
type Distance struct {
	ID         ResourceID             `json:"id"`
	Type       string                 `json:"type"`
	Attributes map[string]interface{} `json:"attributes"`
}

type DistanceDocument struct {
	Data Distance `json:"data"`
}

type FavoriteAirport struct {
	ID ResourceID `json:"id"`
	AirportAttributes
}

type FavoriteAttributes struct {
	Airport FavoriteAirport `json:"airport"`
	Note    string          `json:"note"`
}

type Favorite struct {
	ID         ResourceID         `json:"id"`
	Type       string             `json:"type"`
	Attributes FavoriteAttributes `json:"attributes"`
}

type FavoriteDocument struct {
	Data Favorite `json:"data"`
}

type FavoriteList struct {
	Data  []Favorite `json:"data"`
	Links Links      `json:"links"`
}

type APIError struct {
	Status string `json:"status"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

type ErrorDocument struct {
	Errors []APIError `json:"errors"`
}
