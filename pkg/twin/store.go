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

package twin

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/spjmurray/go-util/pkg/set"
)

// PageSize is the number of airports returned per listing page.
const PageSize = 30

var (
	// ErrNotFound is raised when a resource doesn't exist, or isn't
	// visible to the caller.
	ErrNotFound = errors.New("resource not found")

	// ErrUnknownAirport is raised when a request references an airport
	// that isn't in the catalogue.
	ErrUnknownAirport = errors.New("unknown airport")

	// ErrUnauthorized is raised when a token isn't registered.
	ErrUnauthorized = errors.New("token not authorized")

	// ErrInvalid is raised when a request is missing required fields.
	ErrInvalid = errors.New("invalid request")
)

// Favorite is an airport saved by a token holder.
type Favorite struct {
	ID        string
	Airport   Airport
	Note      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MemoryStore holds all twin state.
type MemoryStore struct {
	lock sync.RWMutex

	airports []Airport
	index    map[string]int
	codes    set.Set[string]
	routes   map[Route]Measurement

	// favorites is keyed by token, then favorite ID.
	favorites map[string]map[string]*Favorite
}

// New returns a store seeded with the default catalogue and routes.
func New() *MemoryStore {
	return NewWithCatalogue(DefaultAirports(), DefaultRoutes())
}

// NewWithCatalogue returns a store with a custom catalogue.
func NewWithCatalogue(airports []Airport, routes map[Route]Measurement) *MemoryStore {
	s := &MemoryStore{
		airports:  slices.Clone(airports),
		index:     make(map[string]int, len(airports)),
		routes:    routes,
		favorites: map[string]map[string]*Favorite{},
	}

	ids := make([]string, len(airports))

	for i, a := range airports {
		s.index[a.ID] = i
		ids[i] = a.ID
	}

	s.codes = set.New[string](ids...)

	if s.routes == nil {
		s.routes = map[Route]Measurement{}
	}

	return s
}

// AddToken registers a token that may manage favorites.
func (s *MemoryStore) AddToken(token string) {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, ok := s.favorites[token]; !ok {
		s.favorites[token] = map[string]*Favorite{}
	}
}

// Authorized tells whether the token is registered.
func (s *MemoryStore) Authorized(token string) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()

	_, ok := s.favorites[token]

	return ok
}

// pageCount returns the number of pages needed for n items, at least one.
func pageCount(n int) int {
	return max(1, (n+PageSize-1)/PageSize)
}

// pageOf returns the given 1-indexed page of items. Pages out of range are
// empty.
func pageOf[T any](items []T, page int) []T {
	if page < 1 {
		page = 1
	}

	start := (page - 1) * PageSize
	if start >= len(items) {
		return []T{}
	}

	end := min(start+PageSize, len(items))

	return slices.Clone(items[start:end])
}

// Pages returns the number of listing pages.
func (s *MemoryStore) Pages() int {
	return pageCount(len(s.airports))
}

// Airports returns the given 1-indexed page of the catalogue.
func (s *MemoryStore) Airports(page int) []Airport {
	return pageOf(s.airports, page)
}

// Airport looks up an airport by IATA code, case insensitively.
func (s *MemoryStore) Airport(id string) (Airport, error) {
	i, ok := s.index[strings.ToUpper(id)]
	if !ok {
		return Airport{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return s.airports[i], nil
}

// Distance calculates the distance between two airports.
func (s *MemoryStore) Distance(from, to string) (*Distance, error) {
	from = strings.ToUpper(from)
	to = strings.ToUpper(to)

	if from == "" || to == "" {
		return nil, fmt.Errorf("%w: both from and to are required", ErrInvalid)
	}

	unknown := set.New[string](from, to).Difference(s.codes)

	var missing []string

	for code := range unknown.All() {
		missing = append(missing, code)
	}

	if len(missing) > 0 {
		slices.Sort(missing)

		return nil, fmt.Errorf("%w: %s", ErrUnknownAirport, strings.Join(missing, ", "))
	}

	fromAirport := s.airports[s.index[from]]
	toAirport := s.airports[s.index[to]]

	m, ok := s.routes[Route{From: from, To: to}]
	if !ok {
		m = Measure(fromAirport, toAirport)
	}

	return &Distance{
		From:          fromAirport,
		To:            toAirport,
		Kilometers:    m.Kilometers,
		Miles:         m.Miles,
		NauticalMiles: m.NauticalMiles,
	}, nil
}

// favoritesFor returns the token's favorites, the caller must hold the lock.
func (s *MemoryStore) favoritesFor(token string) (map[string]*Favorite, error) {
	favorites, ok := s.favorites[token]
	if !ok {
		return nil, ErrUnauthorized
	}

	return favorites, nil
}

// CreateFavorite saves an airport for the token holder.
func (s *MemoryStore) CreateFavorite(token, airportID, note string) (Favorite, error) {
	a, err := s.Airport(airportID)
	if err != nil {
		return Favorite{}, fmt.Errorf("%w: %s", ErrUnknownAirport, airportID)
	}

	s.lock.Lock()
	defer s.lock.Unlock()

	favorites, err := s.favoritesFor(token)
	if err != nil {
		return Favorite{}, err
	}

	now := time.Now().UTC()

	f := &Favorite{
		ID:        uuid.NewString(),
		Airport:   a,
		Note:      note,
		CreatedAt: now,
		UpdatedAt: now,
	}

	favorites[f.ID] = f

	return *f, nil
}

// Favorite returns a single favorite.
func (s *MemoryStore) Favorite(token, id string) (Favorite, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	favorites, err := s.favoritesFor(token)
	if err != nil {
		return Favorite{}, err
	}

	f, ok := favorites[id]
	if !ok {
		return Favorite{}, fmt.Errorf("%w: favorite %s", ErrNotFound, id)
	}

	return *f, nil
}

// Favorites returns every favorite for the token, oldest first.
func (s *MemoryStore) Favorites(token string) ([]Favorite, error) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	favorites, err := s.favoritesFor(token)
	if err != nil {
		return nil, err
	}

	out := make([]Favorite, 0, len(favorites))

	for _, f := range favorites {
		out = append(out, *f)
	}

	slices.SortStableFunc(out, func(a, b Favorite) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}

		return strings.Compare(a.ID, b.ID)
	})

	return out, nil
}

// FavoritesPage returns one page of the token's favorites, oldest first,
// along with the number of pages.
func (s *MemoryStore) FavoritesPage(token string, page int) ([]Favorite, int, error) {
	favorites, err := s.Favorites(token)
	if err != nil {
		return nil, 0, err
	}

	return pageOf(favorites, page), pageCount(len(favorites)), nil
}

// UpdateFavorite replaces a favorite's note.
func (s *MemoryStore) UpdateFavorite(token, id, note string) (Favorite, error) {
	s.lock.Lock()
	defer s.lock.Unlock()

	favorites, err := s.favoritesFor(token)
	if err != nil {
		return Favorite{}, err
	}

	f, ok := favorites[id]
	if !ok {
		return Favorite{}, fmt.Errorf("%w: favorite %s", ErrNotFound, id)
	}

	f.Note = note
	f.UpdatedAt = time.Now().UTC()

	return *f, nil
}

// DeleteFavorite removes a favorite.
func (s *MemoryStore) DeleteFavorite(token, id string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	favorites, err := s.favoritesFor(token)
	if err != nil {
		return err
	}

	if _, ok := favorites[id]; !ok {
		return fmt.Errorf("%w: favorite %s", ErrNotFound, id)
	}

	delete(favorites, id)

	return nil
}

// ClearFavorites removes every favorite for the token.
func (s *MemoryStore) ClearFavorites(token string) error {
	s.lock.Lock()
	defer s.lock.Unlock()

	if _, err := s.favoritesFor(token); err != nil {
		return err
	}

	s.favorites[token] = map[string]*Favorite{}

	return nil
}
