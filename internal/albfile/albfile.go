// Package albfile is the Entry B file-driven-solve collaborator (spec.md
// §6): parsing the SALBP `.alb` textual instance format and writing the
// `.sol`/`.csv` output formats. A thin I/O adapter around solver.Solve,
// supplemented from the original C implementation's load_graph_from_file
// and main() (optimum.c) since spec.md's Non-goals scope the *core* solver
// away from file I/O without forbidding an adapter that does it.
package albfile

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/ertuSebu/salbp-solver/solver"
)

// Sentinel errors for .alb parsing, matching the original's stderr
// diagnostics (read_number_of_tasks_fp/read_cycle_time_fp/etc. returning
// -1) translated into Go sentinel errors.
var (
	// ErrMissingNumberOfTasks indicates the <number of tasks> section was
	// absent or unparsable.
	ErrMissingNumberOfTasks = fmt.Errorf("albfile: missing or invalid <number of tasks> section")

	// ErrMissingCycleTime indicates the <cycle time> section was absent or
	// unparsable.
	ErrMissingCycleTime = fmt.Errorf("albfile: missing or invalid <cycle time> section")

	// ErrTaskIDOutOfRange indicates a <task times> line names an id outside
	// [1, n].
	ErrTaskIDOutOfRange = fmt.Errorf("albfile: task id out of range in <task times>")
)

// Instance is the tuple an .alb file yields: n real tasks, their durations
// (0-indexed, length n), precedence edges over {1..n} (source/sink arcs are
// not present in the file; solver.Solve inserts them), and the cycle time.
type Instance struct {
	N         int
	Durations []int
	Edges     []solver.Edge
	CycleTime int
}

// sectionTag reports whether line opens a new `<...>` section.
func sectionTag(line string) (tag string, isTag bool) {
	trimmed := strings.TrimSpace(line)
	if strings.HasPrefix(trimmed, "<") && strings.HasSuffix(trimmed, ">") {
		return trimmed, true
	}

	return "", false
}

// Parse reads an .alb instance from r, following the section layout of
// spec.md §6: `<number of tasks>`, `<cycle time>`, `<task times>` (lines
// `id duration`, 1-indexed), `<precedence relations>` (lines `u,v`,
// 1-indexed). Sections end at the next `<...>` tag or EOF, exactly as the
// original's read_*_fp functions parse them.
func Parse(r io.Reader) (Instance, error) {
	scanner := bufio.NewScanner(r)
	var lines []string
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return Instance{}, fmt.Errorf("albfile: read: %w", err)
	}

	n, nOK := firstIntAfterTag(lines, "<number of tasks>")
	if !nOK || n <= 0 {
		return Instance{}, ErrMissingNumberOfTasks
	}

	cycle, cOK := firstIntAfterTag(lines, "<cycle time>")
	if !cOK || cycle < 0 {
		return Instance{}, ErrMissingCycleTime
	}

	durations := make([]int, n)
	if err := parseTaskTimes(lines, n, durations); err != nil {
		return Instance{}, err
	}

	edges := parsePrecedenceRelations(lines)

	return Instance{N: n, Durations: durations, Edges: edges, CycleTime: cycle}, nil
}

// firstIntAfterTag scans lines for tag, then returns the first integer found
// on a subsequent non-blank line before the next section tag.
func firstIntAfterTag(lines []string, tag string) (int, bool) {
	for i, line := range lines {
		if strings.TrimSpace(line) != tag {
			continue
		}
		for j := i + 1; j < len(lines); j++ {
			candidate := strings.TrimSpace(lines[j])
			if candidate == "" {
				continue
			}
			if _, isTag := sectionTag(candidate); isTag {
				return 0, false
			}
			v, err := strconv.Atoi(candidate)
			if err != nil {
				return 0, false
			}

			return v, true
		}
	}

	return 0, false
}

// parseTaskTimes fills durations[id-1] for each `id duration` line of the
// <task times> section.
func parseTaskTimes(lines []string, n int, durations []int) error {
	reading := false
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if !reading {
			if trimmed == "<task times>" {
				reading = true
			}
			continue
		}
		if _, isTag := sectionTag(trimmed); isTag {
			break
		}
		if trimmed == "" {
			continue
		}
		fields := strings.Fields(trimmed)
		if len(fields) != 2 {
			continue
		}
		id, err1 := strconv.Atoi(fields[0])
		dur, err2 := strconv.Atoi(fields[1])
		if err1 != nil || err2 != nil {
			continue
		}
		if id < 1 || id > n {
			return ErrTaskIDOutOfRange
		}
		durations[id-1] = dur
	}

	return nil
}

// parsePrecedenceRelations collects `u,v` lines of the <precedence
// relations> section into solver.Edge values, 1-indexed exactly as written
// in the file (solver.Solve accepts task ids over {0, 1..n, n+1} directly).
func parsePrecedenceRelations(lines []string) []solver.Edge {
	var edges []solver.Edge
	reading := false
	for _, raw := range lines {
		trimmed := strings.TrimSpace(raw)
		if !reading {
			if trimmed == "<precedence relations>" {
				reading = true
			}
			continue
		}
		if _, isTag := sectionTag(trimmed); isTag {
			break
		}
		if trimmed == "" {
			continue
		}
		parts := strings.SplitN(trimmed, ",", 2)
		if len(parts) != 2 {
			continue
		}
		u, err1 := strconv.Atoi(strings.TrimSpace(parts[0]))
		v, err2 := strconv.Atoi(strings.TrimSpace(parts[1]))
		if err1 != nil || err2 != nil {
			continue
		}
		edges = append(edges, solver.Edge{U: u, V: v})
	}

	return edges
}
