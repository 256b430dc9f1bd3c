package main

import (
	"flag"
	"log"

	"github.com/user/spacer/web/server"
)

func main() {
	port := flag.Int("port", 8080, "Port for the preview server")
	seed := flag.Int64("seed", 8767162531530871546, "Master random seed for renders")
	flag.Parse()

	srv := server.NewServer(*port, *seed)
	log.Printf("Starting preview server on http://localhost:%d", *port)
	if err := srv.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
