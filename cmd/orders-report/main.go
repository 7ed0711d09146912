package main

import (
	"errors"
	"fmt"
	"os"
	_ "time/tzdata"

	"orders_report/internal"
	"orders_report/internal/config"
)

const (
	exitFailure       = 1
	exitInvalidConfig = 2
)

func main() {
	if err := internal.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		if errors.Is(err, config.ErrInvalidConfig) {
			os.Exit(exitInvalidConfig)
		}
		os.Exit(exitFailure)
	}
}
