package main

import (
	"histrates/internal/app"

	"github.com/sirupsen/logrus"
)

// @title Historical Rates API
// @version 1.0
// @description Nearest-trade historical exchange rates with a staleness-aware cache.
// @BasePath /api/v1
func main() {
	if err := app.Run(); err != nil {
		logrus.WithError(err).Fatal("application stopped")
	}
}
