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

//nolint:revive,staticcheck // dot imports are standard for Ginkgo/Gomega test code
package api

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/url"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/airportgap/apitest/pkg/auth"
)

// ExpectedPageSize is the number of airports the API returns per page.
const ExpectedPageSize = 30

// maxFavoritePages bounds ListAllFavorites against a server whose next link
// never runs out.
const maxFavoritePages = 100

func generateRandomName(prefix string) string {
	bytes := make([]byte, 4) // 8 hex characters
	_, _ = rand.Read(bytes)

	return fmt.Sprintf("%s-%s", prefix, hex.EncodeToString(bytes))
}

func GenerateTestID() string {
	return generateRandomName("test")
}

// ExpectStatus asserts on a response's status, reporting the body and trace
// ID on failure.
func ExpectStatus(resp *Response, status int) {
	GinkgoHelper()

	Expect(resp).NotTo(BeNil())
	Expect(resp.StatusCode).To(Equal(status), "unexpected status, body: %s (trace ID: %s)", string(resp.Body), resp.TraceID)
}

// CreateFavorite creates a favorite, asserts it was created as requested and
// returns the created document along with its ID for subsequent steps.
func CreateFavorite(client *APIClient, ctx context.Context, strategy auth.Strategy, payload url.Values) (*FavoriteDocument, string) {
	GinkgoHelper()

	resp, err := client.CreateFavorite(ctx, payload, strategy)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusCreated)

	favorite, err := Decode[FavoriteDocument](resp)
	Expect(err).NotTo(HaveOccurred())

	favoriteID := favorite.Data.ID.String()
	Expect(favoriteID).NotTo(BeEmpty())

	GinkgoWriter.Printf("Created favorite with ID: %s\n", favoriteID)

	return favorite, favoriteID
}

// CreateFavoriteWithCleanup creates a favorite and schedules its removal.
// The cleanup tolerates the favorite having already been deleted by the
// scenario itself.
func CreateFavoriteWithCleanup(client *APIClient, ctx context.Context, strategy auth.Strategy, payload url.Values) (*FavoriteDocument, string) {
	GinkgoHelper()

	favorite, favoriteID := CreateFavorite(client, ctx, strategy, payload)

	// Schedule cleanup - this runs whether the test passes or fails so we don't need to clean up manually
	DeferCleanup(func() {
		GinkgoWriter.Printf("Cleaning up favorite: %s\n", favoriteID)

		if err := client.DeleteFavoriteIfExists(context.Background(), favoriteID, strategy); err != nil {
			GinkgoWriter.Printf("Warning: Failed to delete favorite %s: %v\n", favoriteID, err)
		}
	})

	return favorite, favoriteID
}

// VerifyFavorite checks a favorite document carries the expected airport and note.
func VerifyFavorite(favorite *FavoriteDocument, airportName, note string) {
	GinkgoHelper()

	Expect(favorite.Data.Attributes.Airport.Name).To(Equal(airportName))
	Expect(favorite.Data.Attributes.Note).To(Equal(note))
}

// UpdateFavoriteNote replaces the note of a favorite and expects success.
func UpdateFavoriteNote(client *APIClient, ctx context.Context, strategy auth.Strategy, favoriteID, note string) *Response {
	GinkgoHelper()

	resp, err := client.UpdateFavorite(ctx, favoriteID, NewFavoriteUpdatePayload(note).Build(), strategy)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusOK)

	return resp
}

// DeleteFavorite deletes a favorite and expects no content in return.
func DeleteFavorite(client *APIClient, ctx context.Context, strategy auth.Strategy, favoriteID string) {
	GinkgoHelper()

	resp, err := client.DeleteFavorite(ctx, favoriteID, strategy)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusNoContent)
}

// VerifyFavoriteAbsent checks a favorite can no longer be retrieved.
func VerifyFavoriteAbsent(client *APIClient, ctx context.Context, strategy auth.Strategy, favoriteID string) {
	GinkgoHelper()

	resp, err := client.GetFavorite(ctx, favoriteID, strategy)
	Expect(err).NotTo(HaveOccurred())
	ExpectStatus(resp, http.StatusNotFound)
}

// ListAllFavorites follows the favorites listing from the first page until
// a page is empty or has no next link, and returns every favorite seen.
func ListAllFavorites(client *APIClient, ctx context.Context, strategy auth.Strategy) *FavoriteList {
	GinkgoHelper()

	all := &FavoriteList{}

	for page := 1; page <= maxFavoritePages; page++ {
		resp, err := client.ListFavoritesPage(ctx, page, strategy)
		Expect(err).NotTo(HaveOccurred())
		ExpectStatus(resp, http.StatusOK)

		favorites, err := Decode[FavoriteList](resp)
		Expect(err).NotTo(HaveOccurred())

		all.Data = append(all.Data, favorites.Data...)

		if len(favorites.Data) == 0 || favorites.Links.Next == "" {
			return all
		}
	}

	Fail(fmt.Sprintf("favorites listing still had a next page after %d pages", maxFavoritePages))

	return all
}

// VerifyFavoritePresence verifies that favorites are present in the list.
func VerifyFavoritePresence(favorites *FavoriteList, expectedFavoriteIDs ...string) {
	GinkgoHelper()

	favoriteIDs := extractFavoriteIDs(favorites)
	for _, expectedID := range expectedFavoriteIDs {
		Expect(favoriteIDs).To(ContainElement(expectedID), "Expected favorite ID %s to be present in the list", expectedID)
	}
}

func extractFavoriteIDs(favorites *FavoriteList) []string {
	favoriteIDs := make([]string, len(favorites.Data))

	for i := range favorites.Data {
		favoriteIDs[i] = favorites.Data[i].ID.String()
	}

	return favoriteIDs
}
