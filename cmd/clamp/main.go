package main

import (
	"fmt"
	"os"

	"github.com/clinia/clamp/internal/cli"
)

func main() {
	cmd := cli.NewRootCmd()
	cmd.SetArgs(cli.SeparateOperands(cmd, os.Args[1:]))
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
