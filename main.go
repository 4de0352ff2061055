package main

import (
	"log"

	"github.com/aishwaryaDel/aihub-bolt/config"
	"github.com/aishwaryaDel/aihub-bolt/server"
)

func main() {
	cfg := config.MustLoad()
	app := &server.App{}
	app.Initialize(cfg)
	if err := app.Run(); err != nil {
		log.Fatal(err)
	}
}
