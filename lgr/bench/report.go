package bench

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Report writes a plain-text timing report. Tick counts get thousands
// separators; on a 1 GHz tick source they run to ten digits fast.
func Report(w io.Writer, results []Result) {
	p := message.NewPrinter(language.English)

	var baseline uint64
	for i, r := range results {
		p.Fprintf(w, "=== %s ===\n", r.Name)
		p.Fprintf(w, "Iterations:   %d\n", r.Iterations)
		p.Fprintf(w, "Raw ticks:    %d\n", r.Ticks)
		p.Fprintf(w, "Elapsed time: %v (%d ms)\n", r.Elapsed, r.Elapsed.Milliseconds())
		p.Fprintf(w, "Accumulated:  %f\n", r.Value)
		if i == 0 {
			baseline = r.Ticks
		} else if r.Ticks > 0 && baseline > 0 {
			p.Fprintf(w, "vs %s:  %.2fx\n", results[0].Name,
				float64(baseline)/float64(r.Ticks))
		}
		p.Fprintf(w, "\n")
	}
}
