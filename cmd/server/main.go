package main

import (
	"os"

	"protettorato/cmd/server/root"
)

func main() {
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}
