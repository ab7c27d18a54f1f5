package main

import (
	"context"
	"flag"
	"log"
	"os"
	"projekt/comms/lib/network"
	"time"
)

func init() {
	log.SetFlags(log.Ltime)
}

func main() {
	argUsable := flag.Bool("usable", false, "only list interfaces with an IPv4 address")
	argStatus := flag.String("status", "", "only list interfaces with this status (connected, disconnected, unknown)")
	argJson := flag.Bool("json", false, "print the interfaces as JSON")
	argTimeout := flag.Duration("timeout", 5*time.Second, "timeout for enumerating the interfaces")
	flag.Parse()

	var status network.Status
	if *argStatus != "" {
		var err error
		status, err = network.ParseStatus(*argStatus)
		if err != nil {
			log.Fatalln("invalid status filter:", err)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), *argTimeout)
	defer cancel()
	summaries, err := network.NewSource().Interfaces(ctx)
	if err != nil {
		log.Fatalln("failed to enumerate interfaces:", err)
	}
	if *argUsable {
		summaries = network.Usable(summaries)
	}
	if *argStatus != "" {
		summaries = network.WithStatus(summaries, status)
	}

	if *argJson {
		err = writeJson(os.Stdout, summaries)
	} else {
		err = writeTable(os.Stdout, summaries)
	}
	if err != nil {
		log.Fatalln("failed to write interfaces:", err)
	}
}
