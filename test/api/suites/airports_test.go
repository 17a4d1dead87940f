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

//nolint:testpackage,revive // test package in suites is standard for these tests, dot imports standard for Ginkgo
package suites

import (
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/airportgap/apitest/test/api"
)

var _ = Describe("Airports", func() {
	Context("When listing airports", Label(FeatureGetAirports), func() {
		Describe("Given no page is requested", func() {
			It("should return the first page of 30 airports", func() {
				// Given: An unauthenticated client
				// When: I request the list of airports
				resp, err := client.ListAirports(ctx)
				Expect(err).NotTo(HaveOccurred())

				// Then: The request should succeed with a JSON document
				api.ExpectStatus(resp, http.StatusOK)
				Expect(resp.Header.Get("Content-Type")).To(Equal("application/json; charset=utf-8"))

				// And: Exactly one page of airports should be returned
				airports, err := api.Decode[api.AirportList](resp)
				Expect(err).NotTo(HaveOccurred())
				Expect(airports.Data).To(HaveLen(api.ExpectedPageSize))

				GinkgoWriter.Printf("Found %d airports\n", len(airports.Data))
			})
		})

		Describe("Given a later page is requested", func() {
			It("should return that page", func() {
				resp, err := client.ListAirportsPage(ctx, 2)
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				airports, err := api.Decode[api.AirportList](resp)
				Expect(err).NotTo(HaveOccurred())
				Expect(airports.Data).NotTo(BeEmpty())
				Expect(len(airports.Data)).To(BeNumerically("<=", api.ExpectedPageSize))
				Expect(airports.Links.Self).To(ContainSubstring("page=2"))
				Expect(airports.Links.Prev).NotTo(BeEmpty())
			})
		})
	})

	Context("When retrieving a single airport", Label(FeatureGetAirport), func() {
		It("should return the airport by its IATA code", func() {
			resp, err := client.GetAirport(ctx, api.DefaultFavoriteAirportID)
			Expect(err).NotTo(HaveOccurred())
			api.ExpectStatus(resp, http.StatusOK)

			airport, err := api.Decode[api.AirportDocument](resp)
			Expect(err).NotTo(HaveOccurred())
			Expect(airport.Data.ID.String()).To(Equal(api.DefaultFavoriteAirportID))
			Expect(airport.Data.Attributes.Name).To(Equal(api.DefaultFavoriteAirportName))
		})
	})

	Context("When calculating the distance between airports", Label(FeatureCalculateDistance), func() {
		Describe("Given two known airports", func() {
			It("should return the distance in every unit", func() {
				// Given: Kansai and San Francisco
				// When: I request the distance between them
				resp, err := client.CalculateDistance(ctx, api.DistancePayload("KIX", "SFO"))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusOK)

				distance, err := api.Decode[api.DistanceDocument](resp)
				Expect(err).NotTo(HaveOccurred())

				// Then: Every unit should be reported
				attributes := distance.Data.Attributes
				Expect(attributes).To(HaveKey("kilometers"))
				Expect(attributes).To(HaveKey("miles"))
				Expect(attributes).To(HaveKey("nautical_miles"))

				// And: The figures should match exactly
				Expect(attributes["kilometers"]).To(Equal(8692.066508240026))
				Expect(attributes["miles"]).To(Equal(5397.239853492001))
				Expect(attributes["nautical_miles"]).To(Equal(4690.070954910584))
			})
		})

		Describe("Given an unknown airport", func() {
			It("should reject the request as unprocessable", func() {
				resp, err := client.CalculateDistance(ctx, api.DistancePayload("KIX", "QQQ"))
				Expect(err).NotTo(HaveOccurred())
				api.ExpectStatus(resp, http.StatusUnprocessableEntity)
			})
		})
	})
})
