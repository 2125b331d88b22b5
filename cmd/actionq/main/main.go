package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/actionq/cmd/actionq"
	"github.com/arthur-debert/actionq/pkg/render"
)

func main() {
	rootCmd := actionq.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		styles := render.DefaultStyles()
		fmt.Fprintln(os.Stderr, styles.Render("error", fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
