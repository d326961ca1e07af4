package main

import (
	"os"

	"github.com/notehub/notehub/app"
	"github.com/notehub/notehub/report"
)

func main() {
	if err := app.Get().Run(os.Args); err != nil {
		report.Quit(err)
	}
}
