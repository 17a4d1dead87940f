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
	"net/url"

	"k8s.io/utils/ptr"
)

const (
	// DefaultFavoriteAirportID is the airport saved by the favorite scenarios.
	DefaultFavoriteAirportID = "JFK"

	// DefaultFavoriteAirportName is the name the API reports for it.
	DefaultFavoriteAirportName = "John F Kennedy International Airport"

	// DefaultFavoriteNote is the note attached on creation.
	DefaultFavoriteNote = "My usual layover when visiting family"

	// UpdatedFavoriteNote replaces DefaultFavoriteNote on update.
	UpdatedFavoriteNote = "My usual layover when visiting family and friends"
)

// FavoritePayloadBuilder builds favorite payloads for testing.
type FavoritePayloadBuilder struct {
	airportID *string
	note      *string
}

// NewFavoritePayload creates a favorite payload builder for JFK with the
// default note.
func NewFavoritePayload() *FavoritePayloadBuilder {
	return &FavoritePayloadBuilder{
		airportID: ptr.To(DefaultFavoriteAirportID),
		note:      ptr.To(DefaultFavoriteNote),
	}
}

// NewFavoriteUpdatePayload creates a builder that only carries a note, as
// sent when updating a favorite.
func NewFavoriteUpdatePayload(note string) *FavoritePayloadBuilder {
	return &FavoritePayloadBuilder{
		note: ptr.To(note),
	}
}

// WithAirportID sets the airport to save (pass empty string to omit).
func (b *FavoritePayloadBuilder) WithAirportID(airportID string) *FavoritePayloadBuilder {
	if airportID == "" {
		b.airportID = nil
	} else {
		b.airportID = ptr.To(airportID)
	}

	return b
}

// WithNote sets the note.
func (b *FavoritePayloadBuilder) WithNote(note string) *FavoritePayloadBuilder {
	b.note = ptr.To(note)
	return b
}

// WithoutNote omits the note entirely.
func (b *FavoritePayloadBuilder) WithoutNote() *FavoritePayloadBuilder {
	b.note = nil
	return b
}

// Build returns the form encoded payload.
func (b *FavoritePayloadBuilder) Build() url.Values {
	values := url.Values{}

	if b.airportID != nil {
		values.Set("airport_id", *b.airportID)
	}

	if b.note != nil {
		values.Set("note", *b.note)
	}

	return values
}

// DistancePayload returns the payload for a distance calculation.
func DistancePayload(from, to string) url.Values {
	return url.Values{
		"from": {from},
		"to":   {to},
	}
}
