// Copyright 2018, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	cli "gopkg.in/urfave/cli.v1"
)

var commands = cli.Commands{
	cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Launch the muninn-s5p webserver",
		Action:  serveAction,
	},
	cli.Command{
		Name:    "ingest",
		Aliases: []string{"i"},
		Usage:   "Walk a directory tree and index every recognized product file",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "dir",
				Usage: "directory tree to walk for product files",
			},
			cli.BoolFlag{
				Name:  "footprint",
				Usage: "resolve product footprints while analyzing",
			},
			cli.StringFlag{
				Name:  "archive",
				Usage: "archive target: a local root directory or s3://bucket[/prefix] (default: S5P_ARCHIVE_TARGET)",
			},
		},
		Action: ingestAction,
	},
	cli.Command{
		Name:    "pull",
		Aliases: []string{"p"},
		Usage:   "Pull new products from the data hub into the local inbox",
		Flags: []cli.Flag{
			cli.StringFlag{
				Name:  "profile",
				Usage: "path of the data hub pull profile (default: S5P_DATAHUB_PROFILE)",
			},
		},
		Action: pullAction,
	},
	cli.Command{
		Name:  "inspect",
		Usage: "Analyze a single product file and print its metadata",
		Flags: []cli.Flag{
			cli.BoolFlag{
				Name:  "footprint",
				Usage: "resolve the product footprint while analyzing",
			},
		},
		Action: inspectAction,
	},
	cli.Command{
		Name:    "migrate",
		Aliases: []string{"m"},
		Usage:   "Update database schema (up, down or status; defaults to up)",
		Action:  migrateDatabaseAction,
	},
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the muninn-s5p CLI",
		Action:  versionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "muninn-s5p"
	app.Usage = "Launch a muninn-s5p process"
	app.Commands = commands
	return
}
