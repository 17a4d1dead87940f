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

// Package twin implements an in-memory stand-in for the Airport API.
//
// The twin serves the same routes and document shapes as the hosted
// service, so the integration suites and the API client can be exercised
// without network access. Favorites are only visible to the bearer token
// that created them, and tokens must be registered with AddToken before
// they are accepted.
package twin
