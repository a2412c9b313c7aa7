// Package main is the entry point for the snapdeploy CLI.
package main

import (
	"fmt"
	"os"

	"github.com/project-koku/snapdeploy/internal/cmd"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cmd.ExitCodeFromError(err))
	}
}
