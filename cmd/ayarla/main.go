package main

import (
	"os"

	"github.com/kdrblkbs/ayarla/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
