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

package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/go-logr/logr"
	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive
	"go.uber.org/mock/gomock"

	"github.com/airportgap/apitest/pkg/auth"
	"github.com/airportgap/apitest/pkg/auth/mock"
	"github.com/airportgap/apitest/pkg/twin"
	"github.com/airportgap/apitest/test/api"
)

const twinToken = "harness-token"

var _ = Describe("APIClient", func() {
	var (
		server   *httptest.Server
		client   *api.APIClient
		config   *api.TestConfig
		strategy auth.Strategy
		ctx      context.Context
	)

	BeforeEach(func() {
		store := twin.New()
		store.AddToken(twinToken)

		server = httptest.NewServer(twin.NewRouter(twin.NewHandler(store, logr.Discard())))
		DeferCleanup(server.Close)

		config = &api.TestConfig{
			BaseURL:        server.URL + "/",
			APIToken:       twinToken,
			RequestTimeout: 5 * time.Second,
			LogRequests:    true,
		}

		var err error

		strategy, err = config.BearerStrategy()
		Expect(err).NotTo(HaveOccurred())

		client = api.NewAPIClientWithConfig(config)
		ctx = context.Background()
	})

	Describe("ListAirports", func() {
		It("returns the first page with the JSON content type", func() {
			resp, err := client.ListAirports(ctx)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)
			Expect(resp.Header.Get("Content-Type")).To(Equal("application/json; charset=utf-8"))
			Expect(resp.TraceID).To(HaveLen(32))

			airports, err := api.Decode[api.AirportList](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(airports.Data).To(HaveLen(api.ExpectedPageSize))
			Expect(airports.Data[0].ID.String()).To(Equal("GKA"))
			Expect(airports.Data[0].Attributes.ICAO).To(Equal("AYGA"))
			Expect(airports.Links.Next).To(HaveSuffix("page=2"))
		})
	})

	Describe("CalculateDistance", func() {
		It("decodes exact distance figures", func() {
			resp, err := client.CalculateDistance(ctx, api.DistancePayload("KIX", "SFO"))
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			distance, err := api.Decode[api.DistanceDocument](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(distance.Data.Attributes).To(HaveKeyWithValue("kilometers", 8692.066508240026))
			Expect(distance.Data.Attributes).To(HaveKeyWithValue("miles", 5397.239853492001))
			Expect(distance.Data.Attributes).To(HaveKeyWithValue("nautical_miles", 4690.070954910584))
		})
	})

	Describe("Favorites", func() {
		It("returns 401 without a strategy", func() {
			resp, err := client.CreateFavorite(ctx, api.NewFavoritePayload().Build(), nil)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusUnauthorized)

			errs, err := api.Decode[api.ErrorDocument](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(errs.Errors).To(HaveLen(1))
			Expect(errs.Errors[0].Status).To(Equal("401"))
		})

		It("decorates every request with the strategy", func() {
			ctrl := gomock.NewController(GinkgoT())

			decorator := mock.NewMockStrategy(ctrl)
			decorator.EXPECT().Decorate(gomock.Any()).DoAndReturn(strategy.Decorate).Times(2)

			_, favoriteID := api.CreateFavorite(client, ctx, decorator, api.NewFavoritePayload().Build())
			api.DeleteFavorite(client, ctx, decorator, favoriteID)
		})

		It("runs the full lifecycle, threading the created ID through each step", func() {
			created, favoriteID := api.CreateFavoriteWithCleanup(client, ctx, strategy, api.NewFavoritePayload().Build())
			api.VerifyFavorite(created, api.DefaultFavoriteAirportName, api.DefaultFavoriteNote)
			Expect(created.Data.Attributes.Airport.ID.String()).To(Equal(api.DefaultFavoriteAirportID))

			resp := api.UpdateFavoriteNote(client, ctx, strategy, favoriteID, api.UpdatedFavoriteNote)

			updated, err := api.Decode[api.FavoriteDocument](resp)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyFavorite(updated, api.DefaultFavoriteAirportName, api.UpdatedFavoriteNote)

			resp, err = client.ListFavorites(ctx, strategy)
			Expect(err).NotTo(HaveOccurred())

			favorites, err := api.Decode[api.FavoriteList](resp)
			Expect(err).NotTo(HaveOccurred())
			api.VerifyFavoritePresence(favorites, favoriteID)

			api.DeleteFavorite(client, ctx, strategy, favoriteID)
			api.VerifyFavoriteAbsent(client, ctx, strategy, favoriteID)
		})

		It("finds a favorite beyond the first page of the listing", func() {
			var favoriteID string

			for range twin.PageSize + 1 {
				_, favoriteID = api.CreateFavoriteWithCleanup(client, ctx, strategy, api.NewFavoritePayload().Build())
			}

			resp, err := client.ListFavorites(ctx, strategy)
			Expect(err).NotTo(HaveOccurred())

			firstPage, err := api.Decode[api.FavoriteList](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(firstPage.Data).To(HaveLen(twin.PageSize))
			Expect(firstPage.Links.Next).To(HaveSuffix("/favorites?page=2"))

			all := api.ListAllFavorites(client, ctx, strategy)
			Expect(all.Data).To(HaveLen(twin.PageSize + 1))
			api.VerifyFavoritePresence(all, favoriteID)
		})

		It("tolerates deleting an absent favorite during cleanup", func() {
			Expect(client.DeleteFavoriteIfExists(ctx, "does-not-exist", strategy)).To(Succeed())
		})

		It("reports other failures during cleanup", func() {
			Expect(client.DeleteFavoriteIfExists(ctx, "does-not-exist", nil)).To(MatchError(ContainSubstring("expected 204, got 401")))
		})

		DescribeTable("rejects schemes the API doesn't accept",
			func(scheme string) {
				unsupported, err := auth.New(scheme, twinToken)
				Expect(err).NotTo(HaveOccurred())

				resp, err := client.CreateFavorite(ctx, api.NewFavoritePayload().Build(), unsupported)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusUnauthorized)
			},
			Entry("oauth", auth.SchemeOAuth),
			Entry("apikey", auth.SchemeAPIKey),
		)
	})

	Describe("Transport failures", func() {
		It("returns an error rather than a response", func() {
			unreachable := *config
			unreachable.BaseURL = "http://127.0.0.1:1"
			unreachable.RequestTimeout = time.Second

			resp, err := api.NewAPIClientWithConfig(&unreachable).ListAirports(ctx)
			Expect(err).To(MatchError(ContainSubstring("http request failed")))
			Expect(resp).To(BeNil())
		})
	})
})

var _ = Describe("Decode", func() {
	It("rejects an empty body", func() {
		_, err := api.Decode[api.FavoriteDocument](&api.Response{StatusCode: http.StatusNoContent, TraceID: "abc"})
		Expect(err).To(MatchError(ContainSubstring("empty body")))
	})

	It("accepts numeric resource IDs", func() {
		doc, err := api.Decode[api.FavoriteDocument](&api.Response{Body: []byte(`{"data":{"id":42,"type":"favorite","attributes":{"note":"n"}}}`)})
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Data.ID.String()).To(Equal("42"))
	})

	It("accepts string resource IDs", func() {
		doc, err := api.Decode[api.FavoriteDocument](&api.Response{Body: []byte(`{"data":{"id":"7","type":"favorite","attributes":{"airport":{"id":"JFK","name":"x"}}}}`)})
		Expect(err).NotTo(HaveOccurred())
		Expect(doc.Data.ID.String()).To(Equal("7"))
		Expect(doc.Data.Attributes.Airport.ID.String()).To(Equal("JFK"))
		Expect(doc.Data.Attributes.Airport.Name).To(Equal("x"))
	})

	It("rejects malformed resource IDs", func() {
		_, err := api.Decode[api.FavoriteDocument](&api.Response{Body: []byte(`{"data":{"id":true}}`)})
		Expect(err).To(HaveOccurred())
	})
})
