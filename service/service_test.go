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

package service

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/9rum/bintree/internal/forest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
)

// dial starts a tree server on an in-memory listener and returns a client
// connected to it.
func dial(t *testing.T) TreeClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	RegisterTreeServer(server, NewTreeServer())
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewTreeClient(conn)
}

// insert inserts the given records into the named tree in order.
func insert(t *testing.T, c TreeClient, tree string, records ...string) {
	t.Helper()
	for _, record := range records {
		r, err := c.Insert(context.Background(), NewRecordRequest(tree, record))
		require.NoError(t, err)
		require.True(t, r.GetValue(), "insert %q", record)
	}
}

func list(t *testing.T, c TreeClient, tree string) []string {
	t.Helper()
	r, err := c.List(context.Background(), TreeName(tree))
	require.NoError(t, err)
	return Records(r)
}

func TestInsertRetrieve(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	insert(t, c, "oak", "m", "f", "t", "a", "h")
	r, err := c.Insert(ctx, NewRecordRequest("oak", "f"))
	require.NoError(t, err)
	assert.False(t, r.GetValue(), "duplicate insert")

	got, err := c.Retrieve(ctx, NewRecordRequest("oak", "h"))
	require.NoError(t, err)
	assert.Equal(t, "h", got.GetValue())

	_, err = c.Retrieve(ctx, NewRecordRequest("oak", "z"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = c.Retrieve(ctx, NewRecordRequest("elm", "a"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	assert.Equal(t, []string{"a", "f", "h", "m", "t"}, list(t, c, "oak"))
}

func TestHeight(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	insert(t, c, "oak", "5", "3", "8", "1", "4")
	for record, want := range map[string]int64{"5": 3, "3": 2, "8": 1, "99": 0} {
		r, err := c.Height(ctx, NewRecordRequest("oak", record))
		require.NoError(t, err)
		assert.Equal(t, want, r.GetValue(), "height of %q", record)
	}
	r, err := c.Height(ctx, NewRecordRequest("elm", "5"))
	require.NoError(t, err)
	assert.Zero(t, r.GetValue())
}

func TestEmptyClear(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	r, err := c.IsEmpty(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.True(t, r.GetValue())

	insert(t, c, "oak", "b", "a")
	r, err = c.IsEmpty(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.False(t, r.GetValue())

	_, err = c.Clear(ctx, TreeName("oak"))
	require.NoError(t, err)
	r, err = c.IsEmpty(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.True(t, r.GetValue())

	_, err = c.Clear(ctx, TreeName("elm"))
	require.NoError(t, err)
}

func TestCopyEqual(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	insert(t, c, "a", "1", "2", "3")
	insert(t, c, "b", "2", "1", "3")
	r, err := c.Equal(ctx, NewEqualRequest("a", "b"))
	require.NoError(t, err)
	assert.False(t, r.GetValue(), "different shapes")

	_, err = c.Copy(ctx, NewCopyRequest("b", "a"))
	require.NoError(t, err)
	r, err = c.Equal(ctx, NewEqualRequest("a", "b"))
	require.NoError(t, err)
	assert.True(t, r.GetValue())

	insert(t, c, "b", "4")
	r, err = c.Equal(ctx, NewEqualRequest("a", "b"))
	require.NoError(t, err)
	assert.False(t, r.GetValue())
	assert.Equal(t, []string{"1", "2", "3"}, list(t, c, "a"))

	_, err = c.Copy(ctx, NewCopyRequest("a", "a"))
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, list(t, c, "a"))

	_, err = c.Copy(ctx, NewCopyRequest("a", "missing"))
	assert.Equal(t, codes.NotFound, status.Code(err))
}

func TestFlattenBuildBalance(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	insert(t, c, "oak", "a", "b", "c", "d", "e", "f", "g")
	h, err := c.Height(ctx, NewRecordRequest("oak", "a"))
	require.NoError(t, err)
	assert.EqualValues(t, 7, h.GetValue())

	levels, err := c.Balance(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.EqualValues(t, 3, levels.GetValue())

	r, err := c.Flatten(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f", "g"}, Records(r))
	empty, err := c.IsEmpty(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.True(t, empty.GetValue())

	_, err = c.Build(ctx, NewBuildRequest("oak", []string{"a", "b"}))
	require.NoError(t, err)
	h, err = c.Height(ctx, NewRecordRequest("oak", "a"))
	require.NoError(t, err)
	assert.EqualValues(t, 2, h.GetValue(), "lower middle becomes the parent")

	_, err = c.Build(ctx, NewBuildRequest("oak", []string{"b", "a"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	_, err = c.Build(ctx, NewBuildRequest("oak", []string{"a", "a"}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
	assert.Equal(t, []string{"a", "b"}, list(t, c, "oak"), "rejected build left the tree untouched")
}

func TestSidewaysDraw(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	insert(t, c, "oak", "5", "3", "8", "1", "4")
	r, err := c.Sideways(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Depth: 2, Record: "8"},
		{Depth: 1, Record: "5"},
		{Depth: 3, Record: "4"},
		{Depth: 2, Record: "3"},
		{Depth: 3, Record: "1"},
	}, Entries(r))

	d, err := c.Draw(ctx, TreeName("oak"))
	require.NoError(t, err)
	assert.Contains(t, d.GetValue(), "[L]")
	assert.Contains(t, d.GetValue(), "[R]")
}

func TestInvalidArgument(t *testing.T) {
	c := dial(t)
	ctx := context.Background()

	_, err := c.Insert(ctx, &structpb.Struct{})
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	_, err = c.Insert(ctx, NewRecordRequest("", "a"))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	in := NewRecordRequest("oak", "a")
	in.Fields[FieldRecord] = structpb.NewNumberValue(1)
	_, err = c.Insert(ctx, in)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))

	in = NewBuildRequest("oak", nil)
	in.Fields[FieldRecords] = structpb.NewStringValue("a")
	_, err = c.Build(ctx, in)
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestToStatus(t *testing.T) {
	assert.Equal(t, codes.NotFound, status.Code(toStatus(forest.ErrTreeNotFound)))
	assert.Equal(t, codes.InvalidArgument, status.Code(toStatus(forest.ErrEmptyName)))
	assert.Equal(t, codes.Internal, status.Code(toStatus(errors.New("boom"))))
	assert.Equal(t, codes.Aborted, status.Code(toStatus(status.Error(codes.Aborted, "aborted"))))
}
