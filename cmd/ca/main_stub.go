//go:build !ebiten

package main

import (
	"os"

	"github.com/charmbracelet/log"
)

func main() {
	log.Error("the GUI build of evo-ca requires the ebiten build tag")
	log.Info("re-run with `go run -tags ebiten ./cmd/ca`, or use ./cmd/evo-term for the terminal view")
	os.Exit(2)
}
