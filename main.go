// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main implements the tree server. Clients address trees by name; a
// tree is planted on its first write and lives until the server terminates.
package main

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/bintree/service"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	metrics := flag.String("metrics", ":2112", "The address to expose metrics on, or empty to disable")
	flag.Parse()
	defer glog.Flush()

	if *metrics != "" {
		go serveMetrics(*metrics)
	}
	if err := serve(*port); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer()
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func serveMetrics(addr string) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	glog.Infof("metrics listening at %s", addr)
	if err := http.ListenAndServe(addr, mux); err != nil && !errors.Is(err, http.ErrServerClosed) {
		glog.Errorf("failed to serve metrics: %v", err)
	}
}

func newServer() *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func(done <-chan os.Signal, server *grpc.Server) {
		sig := <-done
		glog.Infof("received %v, stopping server", sig)
		server.GracefulStop()
	}(done, server)

	service.RegisterTreeServer(server, service.NewTreeServer())

	return server
}
