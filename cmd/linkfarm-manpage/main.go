package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/linkfarm/internal/cli"
	"github.com/arthur-debert/linkfarm/internal/version"

	// Import packages to ensure their init() functions are called for registration
	_ "github.com/arthur-debert/linkfarm/pkg/metadata"
)

func main() {
	rootCmd := cli.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "LINKFARM",
		Section: "1",
		Source:  "linkfarm " + version.Version,
		Manual:  "linkfarm manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
