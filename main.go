package main

import (
	"log"

	"skirmish/internal/config"
	"skirmish/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	srv := server.NewServer(cfg, cfg.Rules())

	log.Println("Starting skirmish session server...")
	if err := srv.Start(); err != nil {
		log.Fatal("Server failed to start: ", err)
	}
}
