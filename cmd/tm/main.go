package main

import (
	"os"

	"github.com/marckohlbrugge/tempmail-cli/internal/cmd/root"
)

func main() {
	os.Exit(root.Execute())
}
