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
	"fmt"
	"net/url"
)

// Endpoints contains all API endpoint patterns.
type Endpoints struct{}

// NewEndpoints creates a new Endpoints instance.
func NewEndpoints() *Endpoints {
	return &Endpoints{}
}

// Airport endpoints.
func (e *Endpoints) ListAirports() string {
	return "/airports"
}

func (e *Endpoints) ListAirportsPage(page int) string {
	return fmt.Sprintf("/airports?page=%d", page)
}

func (e *Endpoints) GetAirport(airportID string) string {
	return fmt.Sprintf("/airports/%s", url.PathEscape(airportID))
}

func (e *Endpoints) CalculateDistance() string {
	return "/airports/distance"
}

// Favorite endpoints, all of which require authentication.
func (e *Endpoints) ListFavorites() string {
	return "/favorites"
}

func (e *Endpoints) ListFavoritesPage(page int) string {
	return fmt.Sprintf("/favorites?page=%d", page)
}

func (e *Endpoints) CreateFavorite() string {
	return "/favorites"
}

func (e *Endpoints) GetFavorite(favoriteID string) string {
	return fmt.Sprintf("/favorites/%s", url.PathEscape(favoriteID))
}

func (e *Endpoints) UpdateFavorite(favoriteID string) string {
	return fmt.Sprintf("/favorites/%s", url.PathEscape(favoriteID))
}

func (e *Endpoints) DeleteFavorite(favoriteID string) string {
	return fmt.Sprintf("/favorites/%s", url.PathEscape(favoriteID))
}
