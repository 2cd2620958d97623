package riemann

import (
	"fmt"
	"io"
)

// Reporter writes the human-readable run report. Wording follows the course
// material the drivers were ported from, in Spanish.
type Reporter struct {
	Out io.Writer
}

// Banner announces the integration before any worker starts. A positive
// threads count adds the thread clause used by the shared-memory driver.
func (rep Reporter) Banner(p Params, threads int) {
	if threads > 0 {
		fmt.Fprintf(rep.Out, "Aproximando la integral de sin(x) desde %.6f hasta %.6f con %d subintervalos utilizando %d hilos.\n",
			p.A, p.B, p.N, threads)
		return
	}
	fmt.Fprintf(rep.Out, "Aproximando la integral de sin(x) desde %.6f hasta %.6f con %d subintervalos.\n",
		p.A, p.B, p.N)
}

// Report prints the approximated integral and the elapsed wall-clock time.
func (rep Reporter) Report(res Result) {
	fmt.Fprintf(rep.Out, "Resultado de la integral aproximada: %.12f\n", res.Value)
	fmt.Fprintf(rep.Out, "Tiempo de ejecución: %.6f segundos.\n", res.Elapsed.Seconds())
}
