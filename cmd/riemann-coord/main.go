// Distributed coordinator: broadcasts one assignment per rank over NATS and
// reduces the partial sums returned by the worker processes. The worker count
// comes from the launch environment (RIEMANN_WORKERS), not the command line,
// mirroring how a cluster launcher fixes the process count.
package main

import (
	"flag"
	"fmt"
	"log"
	"math"
	"os"
	"strconv"

	"github.com/nats-io/nats.go"

	"riemann"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Uso: RIEMANN_WORKERS=<procesos> %s [flags] <a> <b> <n>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Donde:\n")
	fmt.Fprintf(os.Stderr, "    <a> : Límite inferior de integración (float64)\n")
	fmt.Fprintf(os.Stderr, "    <b> : Límite superior de integración (float64)\n")
	fmt.Fprintf(os.Stderr, "    <n> : Número de subintervalos (entero positivo)\n")
	fmt.Fprintf(os.Stderr, "Ejemplo: RIEMANN_WORKERS=4 %s 0 3.141592653589793 100000000\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	natsURL := flag.String("nats", nats.DefaultURL, "NATS server URL")
	dispatchSubject := flag.String("subject", riemann.DefaultDispatchSubject, "Subject for work assignments")
	reduceSubject := flag.String("reduceSubject", riemann.DefaultReduceSubject, "Subject for partial results")
	flag.Parse()

	args := flag.Args()
	if len(args) != 3 {
		usage()
		os.Exit(1)
	}
	p, err := riemann.ParseParams(args[0], args[1], args[2])
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		usage()
		os.Exit(1)
	}
	workers, err := strconv.Atoi(os.Getenv("RIEMANN_WORKERS"))
	if err != nil || workers <= 0 {
		fmt.Fprintf(os.Stderr, "RIEMANN_WORKERS: %v\n", riemann.ErrInvalidWorkers)
		usage()
		os.Exit(1)
	}

	nc, err := nats.Connect(*natsURL)
	if err != nil {
		log.Fatalf("Error connecting to NATS: %v", err)
	}
	defer nc.Close()
	log.Printf("Coordinator connected to NATS at %s, expecting %d workers", *natsURL, workers)

	rep := riemann.Reporter{Out: os.Stdout}
	rep.Banner(p, 0)

	coord := riemann.Coordinator{
		Exec: &riemann.NATSExecutor{
			Conn:            nc,
			DispatchSubject: *dispatchSubject,
			ReduceSubject:   *reduceSubject,
		},
		Workers: workers,
	}
	res, err := coord.Run(math.Sin, p)
	if err != nil {
		log.Fatalf("Error running distributed integration: %v", err)
	}
	rep.Report(res)
}
