package main

import (
	"os"

	"github.com/schmitthub/scrollpin/internal/scrollpin"
)

func main() {
	os.Exit(scrollpin.Main())
}
