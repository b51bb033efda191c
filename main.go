package main

import (
	"os"

	"github.com/ziadkadry99/study-tracker/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
