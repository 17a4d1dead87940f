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

package main

import (
	"context"
	"errors"
	goflag "flag"
	"fmt"
	"net/http"
	"os"

	"github.com/spf13/pflag"

	"github.com/airportgap/apitest/pkg/twin"

	cr "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/log"
	"sigs.k8s.io/controller-runtime/pkg/log/zap"
)

func main() {
	var options twin.Options

	zapOptions := zap.Options{}

	options.AddFlags(pflag.CommandLine)
	zapOptions.BindFlags(goflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)

	pflag.Parse()

	log.SetLogger(zap.New(zap.UseFlagOptions(&zapOptions)))

	logger := log.Log.WithName("airport-twin")

	if len(options.Tokens) == 0 {
		logger.Info("no tokens configured, favorites will reject every request")
	}

	ctx := cr.SetupSignalHandler()

	handler := twin.NewHandler(options.NewStore(), logger.WithName("api"))

	server := &http.Server{
		Addr:              options.ListenAddress,
		Handler:           twin.NewRouter(handler),
		ReadHeaderTimeout: options.ReadHeaderTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), options.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error(err, "server shutdown failed")
		}
	}()

	logger.Info("service starting", "address", options.ListenAddress, "tokens", len(options.Tokens))

	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		fmt.Println(err)
		os.Exit(1)
	}
}
