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
	"fmt"
	"strings"

	"github.com/9rum/bintree/service"
	"github.com/urfave/cli/v2"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

// indent is the width of one level in a sideways dump.
const indent = "    "

// action is a command that runs against the tree selected by --tree.
type action func(cctx *cli.Context, client service.TreeClient, tree string) error

// dial connects to the tree server at addr.  It is replaced in tests.
var dial = func(addr string) (grpc.ClientConnInterface, func() error, error) {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return nil, nil, err
	}
	return conn, conn.Close, nil
}

// withClient connects to the server given by --addr before running fn.
func withClient(fn action) cli.ActionFunc {
	return func(cctx *cli.Context) error {
		conn, closer, err := dial(cctx.String("addr"))
		if err != nil {
			return fmt.Errorf("failed to connect to %s: %w", cctx.String("addr"), err)
		}
		defer closer()
		return fn(cctx, service.NewTreeClient(conn), cctx.String("tree"))
	}
}

// arg returns the single argument of the command.
func arg(cctx *cli.Context, name string) (string, error) {
	if cctx.NArg() != 1 {
		return "", fmt.Errorf("%s: expected exactly one %s", cctx.Command.Name, name)
	}
	return cctx.Args().First(), nil
}

func runInsert(cctx *cli.Context, client service.TreeClient, tree string) error {
	if cctx.NArg() == 0 {
		return fmt.Errorf("insert: no records given")
	}
	for _, record := range cctx.Args().Slice() {
		r, err := client.Insert(cctx.Context, service.NewRecordRequest(tree, record))
		if err != nil {
			return err
		}
		if !r.GetValue() {
			fmt.Fprintf(cctx.App.Writer, "%s: duplicate\n", record)
		}
	}
	return nil
}

func runGet(cctx *cli.Context, client service.TreeClient, tree string) error {
	record, err := arg(cctx, "record")
	if err != nil {
		return err
	}
	r, err := client.Retrieve(cctx.Context, service.NewRecordRequest(tree, record))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, r.GetValue())
	return nil
}

func runHeight(cctx *cli.Context, client service.TreeClient, tree string) error {
	record, err := arg(cctx, "record")
	if err != nil {
		return err
	}
	r, err := client.Height(cctx.Context, service.NewRecordRequest(tree, record))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, r.GetValue())
	return nil
}

func runEmpty(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.IsEmpty(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, r.GetValue())
	return nil
}

func runClear(cctx *cli.Context, client service.TreeClient, tree string) error {
	_, err := client.Clear(cctx.Context, service.TreeName(tree))
	return err
}

func runCopy(cctx *cli.Context, client service.TreeClient, tree string) error {
	dst, err := arg(cctx, "destination")
	if err != nil {
		return err
	}
	_, err = client.Copy(cctx.Context, service.NewCopyRequest(dst, tree))
	return err
}

func runEqual(cctx *cli.Context, client service.TreeClient, tree string) error {
	other, err := arg(cctx, "tree")
	if err != nil {
		return err
	}
	r, err := client.Equal(cctx.Context, service.NewEqualRequest(tree, other))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, r.GetValue())
	return nil
}

func runFlatten(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.Flatten(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(service.Records(r), " "))
	return nil
}

func runBuild(cctx *cli.Context, client service.TreeClient, tree string) error {
	_, err := client.Build(cctx.Context, service.NewBuildRequest(tree, cctx.Args().Slice()))
	return err
}

func runBalance(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.Balance(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, r.GetValue())
	return nil
}

func runList(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.List(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	fmt.Fprintln(cctx.App.Writer, strings.Join(service.Records(r), " "))
	return nil
}

func runSideways(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.Sideways(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	for _, e := range service.Entries(r) {
		fmt.Fprintf(cctx.App.Writer, "%s%s\n", strings.Repeat(indent, e.Depth+1), e.Record)
	}
	return nil
}

func runDraw(cctx *cli.Context, client service.TreeClient, tree string) error {
	r, err := client.Draw(cctx.Context, service.TreeName(tree))
	if err != nil {
		return err
	}
	fmt.Fprint(cctx.App.Writer, r.GetValue())
	return nil
}
