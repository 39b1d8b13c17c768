package main

import (
	"os"

	"github.com/abhisek/vennquiz/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
