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

// Package api provides integration test utilities for the Airport API.
//
// # Client
//
// APIClient is a small hand-written HTTP client rather than a generated
// one. Any change to the API's observable contract has to be mirrored
// here, which keeps that contract explicit and reviewable. It provides:
//   - W3C trace context propagation for request correlation
//   - Detailed error logging with trace IDs for debugging
//   - Per request authentication via pkg/auth strategies
//   - A configurable request timeout
//   - Direct access to HTTP status codes, headers and response bodies
//
// Transport failures are returned as errors and never retried. Status
// codes are left to the caller, the suites assert on them directly.
//
// # Configuration
//
// TestConfig is read from the environment, optionally seeded from a .env
// file. BASE_URL and API_TOKEN are required unless SKIP_INTEGRATION is set.
package api
