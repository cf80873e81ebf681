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

// Command bintreectl talks to a tree server.
package main

import (
	"fmt"
	"os"

	"github.com/carlmjohnson/versioninfo"
	_ "github.com/joho/godotenv/autoload"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "bintreectl",
		Usage:   "inspect and modify the trees of a tree server",
		Version: versioninfo.Short(),
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "addr",
				Usage:   "address of the tree server",
				Value:   "localhost:50051",
				EnvVars: []string{"BINTREE_ADDR"},
			},
			&cli.StringFlag{
				Name:    "tree",
				Aliases: []string{"t"},
				Usage:   "name of the tree to operate on",
				Value:   "default",
				EnvVars: []string{"BINTREE_TREE"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:      "insert",
				Usage:     "insert records into the tree",
				ArgsUsage: "<record>...",
				Action:    withClient(runInsert),
			},
			{
				Name:      "get",
				Usage:     "look up a record",
				ArgsUsage: "<record>",
				Action:    withClient(runGet),
			},
			{
				Name:      "height",
				Usage:     "print the height of the subtree rooted at a record",
				ArgsUsage: "<record>",
				Action:    withClient(runHeight),
			},
			{
				Name:   "empty",
				Usage:  "print whether the tree is empty",
				Action: withClient(runEmpty),
			},
			{
				Name:   "clear",
				Usage:  "remove all records from the tree",
				Action: withClient(runClear),
			},
			{
				Name:      "copy",
				Usage:     "replace another tree with a copy of the tree",
				ArgsUsage: "<destination>",
				Action:    withClient(runCopy),
			},
			{
				Name:      "equal",
				Usage:     "print whether the tree has the same shape and records as another",
				ArgsUsage: "<other>",
				Action:    withClient(runEqual),
			},
			{
				Name:   "flatten",
				Usage:  "move all records out of the tree in ascending order",
				Action: withClient(runFlatten),
			},
			{
				Name:      "build",
				Usage:     "rebuild the tree from records sorted in ascending order",
				ArgsUsage: "<record>...",
				Action:    withClient(runBuild),
			},
			{
				Name:   "balance",
				Usage:  "rebuild the tree into a shape of minimal height",
				Action: withClient(runBalance),
			},
			{
				Name:   "list",
				Usage:  "print the records of the tree in ascending order",
				Action: withClient(runList),
			},
			{
				Name:   "sideways",
				Usage:  "print the tree rotated a quarter turn counterclockwise",
				Action: withClient(runSideways),
			},
			{
				Name:   "draw",
				Usage:  "draw the shape of the tree",
				Action: withClient(runDraw),
			},
		},
	}
}
