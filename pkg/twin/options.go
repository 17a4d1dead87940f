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
	"time"

	"github.com/spf13/pflag"
)

// Options configures a served twin.
type Options struct {
	// ListenAddress is where the HTTP server binds.
	ListenAddress string

	// Tokens are the bearer tokens allowed to manage favorites.
	Tokens []string

	// ReadHeaderTimeout bounds how long a client may take to send headers.
	ReadHeaderTimeout time.Duration

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration
}

// AddFlags registers the options with a flag set.
func (o *Options) AddFlags(f *pflag.FlagSet) {
	f.StringVar(&o.ListenAddress, "listen-address", ":8080", "API listener address.")
	f.StringSliceVar(&o.Tokens, "token", nil, "Bearer token accepted for favorites, may be repeated.")
	f.DurationVar(&o.ReadHeaderTimeout, "read-header-timeout", 10*time.Second, "How long to wait for request headers.")
	f.DurationVar(&o.ShutdownTimeout, "shutdown-timeout", 5*time.Second, "How long to wait for in-flight requests on shutdown.")
}

// NewStore returns a seeded store with every configured token registered.
func (o *Options) NewStore() *MemoryStore {
	s := New()

	for _, token := range o.Tokens {
		if token != "" {
			s.AddToken(token)
		}
	}

	return s
}
