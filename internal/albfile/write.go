package albfile

import (
	"fmt"
	"io"
	"time"

	"github.com/ertuSebu/salbp-solver/solver"
)

// WriteSolution writes one line per station, `station_<i>: <task ids
// space-separated>`, matching spec.md §6's `.sol` format and the original's
// station_%d fprintf loop. Stations are 1-indexed in the output.
func WriteSolution(w io.Writer, res *solver.Result) error {
	for i, tasks := range res.StationTasks() {
		if _, err := fmt.Fprintf(w, "station_%d:", i+1); err != nil {
			return err
		}
		for _, t := range tasks {
			if _, err := fmt.Fprintf(w, " %d", t); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}

	return nil
}

// WriteTimingCSV writes the one-row `fichier,temps (secondes)` CSV of
// spec.md §6, matching the original's CSV writer (elapsed time with two
// decimal places, seconds).
func WriteTimingCSV(w io.Writer, sourceFile string, elapsed time.Duration) error {
	if _, err := fmt.Fprintln(w, "fichier,temps (secondes)"); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "%s,%.2f\n", sourceFile, elapsed.Seconds())

	return err
}
