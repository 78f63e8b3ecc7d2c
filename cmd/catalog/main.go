package main

import (
	"os"

	"github.com/teachertube/backend/internal/app"
)

func main() {
	os.Exit(app.Run("catalog", run))
}
