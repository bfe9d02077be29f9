package main

import (
	"fmt"

	cli "gopkg.in/urfave/cli.v1"
)

const cliVersion = "2.1.0"

func versionAction(*cli.Context) {
	fmt.Println("muninn-s5p version " + cliVersion)
}
