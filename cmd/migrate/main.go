package main

import (
	"os"

	"github.com/MKhiriev/go-sudoku-backend/internal/logger"
)

func main() {
	log := logger.NewLogger("sudoku-migrate")

	if err := newRootCmd(connectFromConfig(log)).Execute(); err != nil {
		os.Exit(1)
	}
}
