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

package main

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/9rum/bintree/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

// serve points dial at an in-memory tree server for the duration of the test.
func serve(t *testing.T) {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	service.RegisterTreeServer(server, service.NewTreeServer())
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	orig := dial
	dial = func(string) (grpc.ClientConnInterface, func() error, error) {
		conn, err := grpc.NewClient("passthrough:///bufnet",
			grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
				return lis.DialContext(ctx)
			}),
			grpc.WithTransportCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			return nil, nil, err
		}
		return conn, conn.Close, nil
	}
	t.Cleanup(func() { dial = orig })
}

// run runs bintreectl with the given arguments and returns what it printed.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	app := newApp()
	app.Writer = &out
	err := app.Run(append([]string{"bintreectl"}, args...))
	return out.String(), err
}

func TestCommands(t *testing.T) {
	serve(t)

	out, err := run(t, "--tree", "oak", "insert", "5", "3", "8", "1", "4", "3")
	require.NoError(t, err)
	assert.Equal(t, "3: duplicate\n", out)

	out, err = run(t, "--tree", "oak", "list")
	require.NoError(t, err)
	assert.Equal(t, "1 3 4 5 8\n", out)

	out, err = run(t, "--tree", "oak", "height", "3")
	require.NoError(t, err)
	assert.Equal(t, "2\n", out)

	out, err = run(t, "--tree", "oak", "get", "4")
	require.NoError(t, err)
	assert.Equal(t, "4\n", out)

	_, err = run(t, "--tree", "oak", "get", "7")
	assert.Equal(t, codes.NotFound, status.Code(err))

	out, err = run(t, "--tree", "oak", "sideways")
	require.NoError(t, err)
	assert.Equal(t, ""+
		"            8\n"+
		"        5\n"+
		"                4\n"+
		"            3\n"+
		"                1\n", out)

	_, err = run(t, "--tree", "oak", "copy", "elm")
	require.NoError(t, err)
	out, err = run(t, "--tree", "oak", "equal", "elm")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "--tree", "oak", "flatten")
	require.NoError(t, err)
	assert.Equal(t, "1 3 4 5 8\n", out)
	out, err = run(t, "--tree", "oak", "empty")
	require.NoError(t, err)
	assert.Equal(t, "true\n", out)

	out, err = run(t, "--tree", "elm", "balance")
	require.NoError(t, err)
	assert.Equal(t, "3\n", out)

	_, err = run(t, "--tree", "elm", "build", "c", "a")
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = run(t, "--tree", "elm", "clear")
	require.NoError(t, err)
	out, err = run(t, "--tree", "elm", "list")
	require.NoError(t, err)
	assert.Equal(t, "\n", out)
}

func TestArgs(t *testing.T) {
	serve(t)

	_, err := run(t, "get")
	assert.Error(t, err)
	_, err = run(t, "height", "a", "b")
	assert.Error(t, err)
	_, err = run(t, "insert")
	assert.Error(t, err)
}

func TestTreeFromEnv(t *testing.T) {
	serve(t)
	t.Setenv("BINTREE_TREE", "pine")

	_, err := run(t, "insert", "a")
	require.NoError(t, err)
	out, err := run(t, "--tree", "pine", "list")
	require.NoError(t, err)
	assert.Equal(t, "a\n", out)
}
