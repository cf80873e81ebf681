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
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// Struct fields used by the requests and responses of Tree service.
const (
	FieldTree        = "tree"
	FieldRecord      = "record"
	FieldRecords     = "records"
	FieldOther       = "other"
	FieldSource      = "source"
	FieldDestination = "destination"
	FieldDepth       = "depth"
)

// Entry is a single line of a sideways dump.
type Entry struct {
	Depth  int
	Record string
}

// TreeName creates a request addressing the named tree.
func TreeName(name string) *wrapperspb.StringValue {
	return wrapperspb.String(name)
}

// NewRecordRequest creates a request for Insert, Retrieve and Height.
func NewRecordRequest(tree, record string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldTree:   structpb.NewStringValue(tree),
		FieldRecord: structpb.NewStringValue(record),
	}}
}

// NewCopyRequest creates a request for Copy that replaces the tree dst with a
// copy of the tree src.
func NewCopyRequest(dst, src string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDestination: structpb.NewStringValue(dst),
		FieldSource:      structpb.NewStringValue(src),
	}}
}

// NewEqualRequest creates a request for Equal.
func NewEqualRequest(tree, other string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldTree:  structpb.NewStringValue(tree),
		FieldOther: structpb.NewStringValue(other),
	}}
}

// NewBuildRequest creates a request for Build.
func NewBuildRequest(tree string, records []string) *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		FieldTree:    structpb.NewStringValue(tree),
		FieldRecords: structpb.NewListValue(newList(records)),
	}}
}

// newList converts the given records to a list value.
func newList(records []string) *structpb.ListValue {
	values := make([]*structpb.Value, 0, len(records))
	for _, record := range records {
		values = append(values, structpb.NewStringValue(record))
	}
	return &structpb.ListValue{Values: values}
}

// Records decodes a list response of Flatten and List.
func Records(list *structpb.ListValue) []string {
	records := make([]string, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		records = append(records, v.GetStringValue())
	}
	return records
}

// Entries decodes a list response of Sideways.
func Entries(list *structpb.ListValue) []Entry {
	entries := make([]Entry, 0, len(list.GetValues()))
	for _, v := range list.GetValues() {
		fields := v.GetStructValue().GetFields()
		entries = append(entries, Entry{
			Depth:  int(fields[FieldDepth].GetNumberValue()),
			Record: fields[FieldRecord].GetStringValue(),
		})
	}
	return entries
}

// newEntry encodes a single line of a sideways dump.
func newEntry(depth int, record string) *structpb.Value {
	return structpb.NewStructValue(&structpb.Struct{Fields: map[string]*structpb.Value{
		FieldDepth:  structpb.NewNumberValue(float64(depth)),
		FieldRecord: structpb.NewStringValue(record),
	}})
}

// stringField extracts a mandatory string field from a request.
func stringField(in *structpb.Struct, key string) (string, error) {
	v, ok := in.GetFields()[key]
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "missing field %q", key)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "field %q is not a string", key)
	}
	return s.StringValue, nil
}

// listField extracts a mandatory list of strings from a request.
func listField(in *structpb.Struct, key string) ([]string, error) {
	v, ok := in.GetFields()[key]
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "missing field %q", key)
	}
	list, ok := v.GetKind().(*structpb.Value_ListValue)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "field %q is not a list", key)
	}
	out := make([]string, 0, len(list.ListValue.GetValues()))
	for i, v := range list.ListValue.GetValues() {
		s, ok := v.GetKind().(*structpb.Value_StringValue)
		if !ok {
			return nil, status.Errorf(codes.InvalidArgument, "element %d of field %q is not a string", i, key)
		}
		out = append(out, s.StringValue)
	}
	return out, nil
}
