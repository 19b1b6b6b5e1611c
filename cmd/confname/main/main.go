package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/confname/cmd/confname"
	"github.com/arthur-debert/confname/pkg/style"
)

func main() {
	rootCmd := confname.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
