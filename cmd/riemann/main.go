// Sequential driver: one RangeSum invocation over the whole index space.
package main

import (
	"fmt"
	"math"
	"os"

	"riemann"
)

func usage() {
	fmt.Fprintf(os.Stderr, "Uso: %s <a> <b> <n>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "Donde:\n")
	fmt.Fprintf(os.Stderr, "    <a> : Límite inferior de integración (float64)\n")
	fmt.Fprintf(os.Stderr, "    <b> : Límite superior de integración (float64)\n")
	fmt.Fprintf(os.Stderr, "    <n> : Número de subintervalos (entero positivo)\n")
	fmt.Fprintf(os.Stderr, "Ejemplo: %s 0 3.141592653589793 100000000\n", os.Args[0])
}

func main() {
	args := os.Args[1:]
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

	rep := riemann.Reporter{Out: os.Stdout}
	rep.Banner(p, 0)

	coord := riemann.Coordinator{Exec: &riemann.PoolExecutor{}, Workers: 1}
	res, err := coord.Run(math.Sin, p)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	rep.Report(res)
}
