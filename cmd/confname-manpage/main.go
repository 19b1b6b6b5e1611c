package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/confname/cmd/confname"
	"github.com/arthur-debert/confname/internal/version"
)

func main() {
	rootCmd := confname.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "CONFNAME",
		Section: "1",
		Source:  "confname " + version.Version,
		Manual:  "confname manual",
	}

	if err := doc.GenMan(rootCmd, header, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
