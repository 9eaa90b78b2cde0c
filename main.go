package main

import (
	"os"

	"github.com/onkeltom/page-load-comparison-analysis/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}