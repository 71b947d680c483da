package main

import (
	"os"

	"github.com/pillarscan/pillarscan/internal/cli"
)

func main() {
	os.Exit(cli.Run())
}
