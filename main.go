package main

import (
	"os"

	"github.com/mormao/randstr/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
