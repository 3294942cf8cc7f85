package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/linkfarm/internal/cli"
	"github.com/arthur-debert/linkfarm/pkg/output/styles"

	// Import packages to ensure their init() functions are called for registration
	_ "github.com/arthur-debert/linkfarm/pkg/metadata"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
