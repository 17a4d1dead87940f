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

// Package auth provides request decorators that attach credentials to
// outgoing HTTP requests.
//
// Three schemes are supported:
//   - BearerAuth sets "Authorization: Bearer <token>" and "Accept: application/json".
//   - OAuthToken sets "OAUTH-TOKEN: <token>".
//   - APIKeyAuth sets "Authorization: ApiKey <key>".
//
// Strategies only carry the credential, they never validate its format.
// That is left to the server receiving the request.
package auth
