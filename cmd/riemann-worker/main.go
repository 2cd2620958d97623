// Distributed worker: joins the dispatch queue group, computes the midpoint
// partial sum for each assignment it receives, and publishes the partial to
// the reduce subject. Runs until killed.
package main

import (
	"flag"
	"log"
	"math"

	"github.com/nats-io/nats.go"

	"riemann"
)

func main() {
	natsURL := flag.String("nats", nats.DefaultURL, "NATS server URL")
	dispatchSubject := flag.String("subject", riemann.DefaultDispatchSubject, "Subject for work assignments")
	reduceSubject := flag.String("reduceSubject", riemann.DefaultReduceSubject, "Subject for partial results")
	flag.Parse()

	nc, err := nats.Connect(*natsURL)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	defer nc.Close()
	log.Printf("Worker connected to NATS at %s", *natsURL)

	sub, err := riemann.ServeWorker(nc, *dispatchSubject, *reduceSubject, math.Sin)
	if err != nil {
		log.Fatalf("Error subscribing to %s: %v", *dispatchSubject, err)
	}
	defer sub.Unsubscribe()

	select {}
}
