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
	"net/http"
	"net/http/httptest"
	"os"
	"time"

	. "github.com/onsi/ginkgo/v2" //nolint:revive
	. "github.com/onsi/gomega"    //nolint:revive

	"github.com/airportgap/apitest/pkg/auth"
	"github.com/airportgap/apitest/test/api"
)

// setenv sets an environment variable for the duration of the spec.
func setenv(key, value string) {
	previous, ok := os.LookupEnv(key)

	Expect(os.Setenv(key, value)).To(Succeed())

	DeferCleanup(func() {
		if ok {
			Expect(os.Setenv(key, previous)).To(Succeed())
		} else {
			Expect(os.Unsetenv(key)).To(Succeed())
		}
	})
}

var _ = Describe("LoadTestConfig", func() {
	BeforeEach(func() {
		for _, key := range []string{"BASE_URL", "API_TOKEN", "REQUEST_TIMEOUT", "SKIP_INTEGRATION", "LOG_REQUESTS", "LOG_RESPONSES"} {
			setenv(key, "")
		}
	})

	It("loads required values and applies defaults", func() {
		setenv("BASE_URL", "https://airportgap.example.com/api/")
		setenv("API_TOKEN", "secret")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.BaseURL).To(Equal("https://airportgap.example.com/api"))
		Expect(config.APIToken).To(Equal("secret"))
		Expect(config.RequestTimeout).To(Equal(30 * time.Second))
		Expect(config.SkipIntegration).To(BeFalse())
	})

	It("honours optional overrides", func() {
		setenv("BASE_URL", "http://localhost:8080")
		setenv("API_TOKEN", "secret")
		setenv("REQUEST_TIMEOUT", "2s")
		setenv("LOG_REQUESTS", "true")
		setenv("LOG_RESPONSES", "not-a-bool")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.RequestTimeout).To(Equal(2 * time.Second))
		Expect(config.LogRequests).To(BeTrue())
		Expect(config.LogResponses).To(BeFalse())
	})

	It("fails fast naming every missing value", func() {
		_, err := api.LoadTestConfig()
		Expect(err).To(MatchError(ContainSubstring("missing required configuration: API_TOKEN, BASE_URL")))
	})

	It("sends the token as a bearer token whatever scheme the environment asks for", func() {
		setenv("BASE_URL", "http://localhost:8080")
		setenv("API_TOKEN", "secret")
		setenv("AUTH_SCHEME", "apikey")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())

		strategy, err := config.BearerStrategy()
		Expect(err).NotTo(HaveOccurred())
		Expect(strategy).To(BeAssignableToTypeOf(&auth.BearerAuth{}))

		req := httptest.NewRequest(http.MethodPost, "/favorites", nil)
		strategy.Decorate(req)
		Expect(req.Header.Get("Authorization")).To(Equal("Bearer secret"))
	})

	It("refuses to build a bearer strategy without a token", func() {
		_, err := (&api.TestConfig{}).BearerStrategy()
		Expect(err).To(MatchError(auth.ErrMissingCredential))
	})

	It("doesn't require values when integration tests are skipped", func() {
		setenv("SKIP_INTEGRATION", "true")

		config, err := api.LoadTestConfig()
		Expect(err).NotTo(HaveOccurred())
		Expect(config.SkipIntegration).To(BeTrue())
	})
})
