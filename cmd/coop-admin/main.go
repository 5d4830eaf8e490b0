package main

import (
	"fmt"
	"os"

	"github.com/Blooming2081/project-management/internal/cmd"
	"github.com/Blooming2081/project-management/internal/config"
)

func main() {
	config.LoadDotEnv(".")

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
