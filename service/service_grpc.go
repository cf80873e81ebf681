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

	"github.com/9rum/bintree/internal/bst"
	"github.com/9rum/bintree/internal/forest"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Record is the record type held by the trees of the service.
type Record = bst.Key[string]

// treeServer implements the server API for Tree service.
type treeServer struct {
	UnimplementedTreeServer
	forest *forest.Forest[Record]
}

// NewTreeServer creates a new tree server with an empty forest.
func NewTreeServer() TreeServer {
	return &treeServer{
		forest: forest.New[Record](),
	}
}

// toStatus converts the given error to a gRPC status error.
func toStatus(err error) error {
	if _, ok := status.FromError(err); ok {
		return err
	}
	switch {
	case errors.Is(err, forest.ErrTreeNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, forest.ErrEmptyName):
		return status.Error(codes.InvalidArgument, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

// update runs fn on the named tree, planting it if needed.
func (s *treeServer) update(name string, fn func(*bst.Tree[Record]) error) error {
	defer func() {
		trees.Set(float64(s.forest.Len()))
	}()
	if err := s.forest.Update(name, fn); err != nil {
		return toStatus(err)
	}
	return nil
}

// view runs fn on the named tree.  A tree that was never planted is presented
// as an empty tree.
func (s *treeServer) view(name string, fn func(*bst.Tree[Record]) error) error {
	err := s.forest.View(name, fn)
	if errors.Is(err, forest.ErrTreeNotFound) {
		err = fn(bst.New[Record]())
	}
	if err != nil {
		return toStatus(err)
	}
	return nil
}

// Insert inserts the given record into the tree.
func (s *treeServer) Insert(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	operations.WithLabelValues("insert").Inc()
	name, err := stringField(in, FieldTree)
	if err != nil {
		return nil, err
	}
	record, err := stringField(in, FieldRecord)
	if err != nil {
		return nil, err
	}
	glog.Infof("Insert called on tree %q with record %q", name, record)

	var inserted bool
	if err = s.update(name, func(t *bst.Tree[Record]) error {
		inserted = t.Insert(bst.NewKey(record))
		return nil
	}); err != nil {
		return nil, err
	}
	if !inserted {
		duplicateInserts.Inc()
		glog.V(2).Infof("tree %q already holds %q", name, record)
	}
	return wrapperspb.Bool(inserted), nil
}

// Retrieve looks for the given record in the tree.
func (s *treeServer) Retrieve(ctx context.Context, in *structpb.Struct) (*wrapperspb.StringValue, error) {
	operations.WithLabelValues("retrieve").Inc()
	name, err := stringField(in, FieldTree)
	if err != nil {
		return nil, err
	}
	record, err := stringField(in, FieldRecord)
	if err != nil {
		return nil, err
	}
	glog.Infof("Retrieve called on tree %q with record %q", name, record)

	var (
		found Record
		ok    bool
	)
	if err = s.view(name, func(t *bst.Tree[Record]) error {
		found, ok = t.Get(bst.NewKey(record))
		return nil
	}); err != nil {
		return nil, err
	}
	if !ok {
		return nil, status.Errorf(codes.NotFound, "record %q not found in tree %q", record, name)
	}
	return wrapperspb.String(found.Value()), nil
}

// Height returns the height of the subtree rooted at the given record, or 0 if
// there is no such record.
func (s *treeServer) Height(ctx context.Context, in *structpb.Struct) (*wrapperspb.Int64Value, error) {
	operations.WithLabelValues("height").Inc()
	name, err := stringField(in, FieldTree)
	if err != nil {
		return nil, err
	}
	record, err := stringField(in, FieldRecord)
	if err != nil {
		return nil, err
	}
	glog.Infof("Height called on tree %q with record %q", name, record)

	var height int
	if err = s.view(name, func(t *bst.Tree[Record]) error {
		height = t.Height(bst.NewKey(record))
		return nil
	}); err != nil {
		return nil, err
	}
	return wrapperspb.Int64(int64(height)), nil
}

// IsEmpty tests whether the tree has no records.
func (s *treeServer) IsEmpty(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	operations.WithLabelValues("is_empty").Inc()
	glog.Infof("IsEmpty called on tree %q", in.GetValue())

	var isEmpty bool
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		isEmpty = t.IsEmpty()
		return nil
	}); err != nil {
		return nil, err
	}
	return wrapperspb.Bool(isEmpty), nil
}

// Clear removes all records from the tree.
func (s *treeServer) Clear(ctx context.Context, in *wrapperspb.StringValue) (*empty.Empty, error) {
	operations.WithLabelValues("clear").Inc()
	glog.Infof("Clear called on tree %q", in.GetValue())

	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		t.Clear()
		return nil
	}); err != nil {
		return nil, err
	}
	return new(empty.Empty), nil
}

// Copy replaces the destination tree with a deep copy of the source tree.
func (s *treeServer) Copy(ctx context.Context, in *structpb.Struct) (*empty.Empty, error) {
	operations.WithLabelValues("copy").Inc()
	dst, err := stringField(in, FieldDestination)
	if err != nil {
		return nil, err
	}
	src, err := stringField(in, FieldSource)
	if err != nil {
		return nil, err
	}
	glog.Infof("Copy called from tree %q to tree %q", src, dst)

	defer func() {
		trees.Set(float64(s.forest.Len()))
	}()
	if err = s.forest.Assign(dst, src); err != nil {
		return nil, toStatus(err)
	}
	return new(empty.Empty), nil
}

// Equal tests whether the two trees are structurally equal.
func (s *treeServer) Equal(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	operations.WithLabelValues("equal").Inc()
	name, err := stringField(in, FieldTree)
	if err != nil {
		return nil, err
	}
	other, err := stringField(in, FieldOther)
	if err != nil {
		return nil, err
	}
	glog.Infof("Equal called on trees %q and %q", name, other)

	equal, err := s.forest.Equal(name, other)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(equal), nil
}

// Flatten moves all records out of the tree in ascending order.
func (s *treeServer) Flatten(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	operations.WithLabelValues("flatten").Inc()
	glog.Infof("Flatten called on tree %q", in.GetValue())

	var out *structpb.ListValue
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		out = newList(values(t.Flatten()))
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Build rebuilds the tree from the given records, which must be sorted in
// strictly ascending order.
func (s *treeServer) Build(ctx context.Context, in *structpb.Struct) (*empty.Empty, error) {
	operations.WithLabelValues("build").Inc()
	name, err := stringField(in, FieldTree)
	if err != nil {
		return nil, err
	}
	raw, err := listField(in, FieldRecords)
	if err != nil {
		return nil, err
	}
	glog.Infof("Build called on tree %q with %d records", name, len(raw))

	records := make([]Record, 0, len(raw))
	for _, v := range raw {
		records = append(records, bst.NewKey(v))
	}
	if !bst.Sorted(records) {
		return nil, status.Error(codes.InvalidArgument, "records are not sorted in strictly ascending order")
	}
	if err = s.update(name, func(t *bst.Tree[Record]) error {
		t.Build(records)
		return nil
	}); err != nil {
		return nil, err
	}
	return new(empty.Empty), nil
}

// Balance rebuilds the tree into a shape of minimal height and returns the
// resulting height.
func (s *treeServer) Balance(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.Int64Value, error) {
	operations.WithLabelValues("balance").Inc()
	glog.Infof("Balance called on tree %q", in.GetValue())

	var levels int
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		t.Balance()
		levels = t.Levels()
		return nil
	}); err != nil {
		return nil, err
	}
	return wrapperspb.Int64(int64(levels)), nil
}

// List returns the records of the tree in ascending order.
func (s *treeServer) List(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	operations.WithLabelValues("list").Inc()
	glog.Infof("List called on tree %q", in.GetValue())

	out := new(structpb.ListValue)
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		for r := range t.All() {
			out.Values = append(out.Values, structpb.NewStringValue(r.Value()))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Sideways returns the sideways dump of the tree.
func (s *treeServer) Sideways(ctx context.Context, in *wrapperspb.StringValue) (*structpb.ListValue, error) {
	operations.WithLabelValues("sideways").Inc()
	glog.Infof("Sideways called on tree %q", in.GetValue())

	out := new(structpb.ListValue)
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		for depth, r := range t.Sideways() {
			out.Values = append(out.Values, newEntry(depth, r.Value()))
		}
		return nil
	}); err != nil {
		return nil, err
	}
	return out, nil
}

// Draw renders the shape of the tree.
func (s *treeServer) Draw(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.StringValue, error) {
	operations.WithLabelValues("draw").Inc()
	glog.Infof("Draw called on tree %q", in.GetValue())

	var out string
	if err := s.view(in.GetValue(), func(t *bst.Tree[Record]) error {
		out = t.Draw()
		return nil
	}); err != nil {
		return nil, err
	}
	return wrapperspb.String(out), nil
}

// values unwraps the given records.
func values(records []Record) []string {
	out := make([]string, 0, len(records))
	for _, r := range records {
		out = append(out, r.Value())
	}
	return out
}
