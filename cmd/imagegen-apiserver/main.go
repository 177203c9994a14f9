// Package main is the entry point for the image generator API server.
package main

import (
	_ "go.uber.org/automaxprocs/maxprocs"

	"github.com/Afzalshaikh78/ImageGenerator/cmd/imagegen-apiserver/app"
)

func main() {
	app.NewApp().Run()
}
