package neklog

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
)

// stepPattern matches the per-step summary line a Nek5000 run prints, e.g.
//
//	Step     42, t= 4.2000000E-02, DT= 1.0000000E-03, C=  0.450  1.2340E+01  5.6700E-01
//
// The trailing two unlabeled numbers are the accumulated and per-step wall
// clock times.
var stepPattern = regexp.MustCompile(`Step\s+(\d+),\s*t=\s*([0-9E+\-.]+),\s*DT=\s*([0-9E+\-.]+),\s*C=\s*([0-9E+\-.]+)\s*([0-9E+\-.]+)\s*([0-9E+\-.]+)`)

// Entry holds the six fields extracted from one step line.
type Entry struct {
	Step     int
	Time     float64
	DT       float64
	CFL      float64
	WallTime float64 // accumulated wall clock seconds
	StepWall float64 // wall clock seconds spent on this step
}

// History holds the parsed series in parallel slices, one element per
// accepted step line. Append is the only writer, which keeps all six
// slices the same length.
type History struct {
	Steps     []int
	Times     []float64
	DTs       []float64
	CFLs      []float64
	WallTimes []float64
	StepWalls []float64
}

// Append adds one entry to every series.
func (h *History) Append(e Entry) {
	h.Steps = append(h.Steps, e.Step)
	h.Times = append(h.Times, e.Time)
	h.DTs = append(h.DTs, e.DT)
	h.CFLs = append(h.CFLs, e.CFL)
	h.WallTimes = append(h.WallTimes, e.WallTime)
	h.StepWalls = append(h.StepWalls, e.StepWall)
}

// Len returns the number of parsed steps.
func (h History) Len() int {
	return len(h.Steps)
}

// Last returns the most recent entry, or false when the history is empty.
func (h History) Last() (Entry, bool) {
	n := h.Len()
	if n == 0 {
		return Entry{}, false
	}
	return Entry{
		Step:     h.Steps[n-1],
		Time:     h.Times[n-1],
		DT:       h.DTs[n-1],
		CFL:      h.CFLs[n-1],
		WallTime: h.WallTimes[n-1],
		StepWall: h.StepWalls[n-1],
	}, true
}

// Clone returns an independent copy of the history.
func (h History) Clone() History {
	return History{
		Steps:     append([]int(nil), h.Steps...),
		Times:     append([]float64(nil), h.Times...),
		DTs:       append([]float64(nil), h.DTs...),
		CFLs:      append([]float64(nil), h.CFLs...),
		WallTimes: append([]float64(nil), h.WallTimes...),
		StepWalls: append([]float64(nil), h.StepWalls...),
	}
}

// ParseLine extracts an entry from a single log line. The second return is
// false when the line is not a step line or any field fails to parse.
func ParseLine(line string) (Entry, bool) {
	m := stepPattern.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, false
	}

	step, err := strconv.Atoi(m[1])
	if err != nil {
		return Entry{}, false
	}
	fields := make([]float64, 5)
	for i, raw := range m[2:] {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return Entry{}, false
		}
		fields[i] = v
	}

	return Entry{
		Step:     step,
		Time:     fields[0],
		DT:       fields[1],
		CFL:      fields[2],
		WallTime: fields[3],
		StepWall: fields[4],
	}, true
}

// Parse scans r line by line and collects every step line into a history.
// Non-matching lines are skipped.
func Parse(r io.Reader) (History, error) {
	var h History

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if e, ok := ParseLine(scanner.Text()); ok {
			h.Append(e)
		}
	}
	if err := scanner.Err(); err != nil {
		return History{}, fmt.Errorf("scan log: %w", err)
	}
	return h, nil
}

// ReadFile parses the logfile at path from scratch. A missing file yields
// an empty history and no error; the run may simply not have started yet.
func ReadFile(path string) (History, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return History{}, nil
		}
		return History{}, fmt.Errorf("open log: %w", err)
	}
	defer file.Close()

	return Parse(file)
}
