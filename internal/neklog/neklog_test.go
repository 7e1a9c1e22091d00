package neklog

import (
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sampleLog = `
 nek5000
 Initialization successfully completed

Step      1, t= 1.0000000E-03, DT= 1.0000000E-03, C=  0.150  2.3000E-01  2.3000E-01
 filtering done
Step      2, t= 2.0000000E-03, DT= 1.0000000E-03, C=  0.260  4.8000E-01  2.5000E-01
some unrelated diagnostic output
Step      3, t= 3.0000000E-03, DT= 1.0000000E-03, C=  0.310  7.5000E-01  2.7000E-01
`

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Entry
		ok   bool
	}{
		{
			name: "standard step line",
			line: "Step     42, t= 4.2000000E-02, DT= 1.0000000E-03, C=  0.450  1.2340E+01  5.6700E-01",
			want: Entry{Step: 42, Time: 4.2e-2, DT: 1e-3, CFL: 0.45, WallTime: 12.34, StepWall: 0.567},
			ok:   true,
		},
		{
			name: "leading whitespace",
			line: "  Step 7, t= 7.0E-03, DT= 1.0E-03, C= 0.2 1.4E+00 2.0E-01",
			want: Entry{Step: 7, Time: 7e-3, DT: 1e-3, CFL: 0.2, WallTime: 1.4, StepWall: 0.2},
			ok:   true,
		},
		{
			name: "negative exponent fields",
			line: "Step 1, t= 1.0E-09, DT= 1.0E-09, C= 0.001 1.0E-02 1.0E-02",
			want: Entry{Step: 1, Time: 1e-9, DT: 1e-9, CFL: 0.001, WallTime: 0.01, StepWall: 0.01},
			ok:   true,
		},
		{
			name: "not a step line",
			line: " filtering done",
			ok:   false,
		},
		{
			name: "empty line",
			line: "",
			ok:   false,
		},
		{
			name: "malformed numeric field",
			line: "Step 3, t= 1.E+E-, DT= 1.0E-03, C= 0.2 1.0E+00 1.0E-01",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("ParseLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if !ok {
				return
			}
			if got.Step != tt.want.Step {
				t.Errorf("Step = %d, want %d", got.Step, tt.want.Step)
			}
			pairs := [][2]float64{
				{got.Time, tt.want.Time},
				{got.DT, tt.want.DT},
				{got.CFL, tt.want.CFL},
				{got.WallTime, tt.want.WallTime},
				{got.StepWall, tt.want.StepWall},
			}
			for i, p := range pairs {
				if math.Abs(p[0]-p[1]) > 1e-12 {
					t.Errorf("field %d = %g, want %g", i, p[0], p[1])
				}
			}
		})
	}
}

func TestParse_SkipsNonStepLines(t *testing.T) {
	h, err := Parse(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}
	if h.Steps[0] != 1 || h.Steps[2] != 3 {
		t.Fatalf("Steps = %v, want [1 2 3]", h.Steps)
	}
	if h.CFLs[1] != 0.26 {
		t.Fatalf("CFLs[1] = %g, want 0.26", h.CFLs[1])
	}
}

func TestParse_SeriesStayParallel(t *testing.T) {
	h, err := Parse(strings.NewReader(sampleLog))
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	n := len(h.Steps)
	for name, l := range map[string]int{
		"Times":     len(h.Times),
		"DTs":       len(h.DTs),
		"CFLs":      len(h.CFLs),
		"WallTimes": len(h.WallTimes),
		"StepWalls": len(h.StepWalls),
	} {
		if l != n {
			t.Errorf("len(%s) = %d, want %d", name, l, n)
		}
	}
}

func TestReadFile_MissingFileYieldsEmptyHistory(t *testing.T) {
	h, err := ReadFile(filepath.Join(t.TempDir(), "no-such-logfile"))
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if h.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", h.Len())
	}
}

func TestReadFile_ParsesWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logfile")
	if err := os.WriteFile(path, []byte(sampleLog), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	h, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile returned error: %v", err)
	}
	if h.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", h.Len())
	}

	last, ok := h.Last()
	if !ok {
		t.Fatal("Last() ok = false, want true")
	}
	if last.Step != 3 || last.CFL != 0.31 {
		t.Fatalf("Last() = %+v, want step 3 cfl 0.31", last)
	}
}

func TestHistory_CloneIsIndependent(t *testing.T) {
	var h History
	h.Append(Entry{Step: 1, Time: 0.1})
	h.Append(Entry{Step: 2, Time: 0.2})

	clone := h.Clone()
	clone.Steps[0] = 999
	clone.Times[0] = 9.9

	if h.Steps[0] != 1 || h.Times[0] != 0.1 {
		t.Fatalf("Clone shares storage with original: %v %v", h.Steps, h.Times)
	}
}

func TestHistory_LastEmpty(t *testing.T) {
	var h History
	if _, ok := h.Last(); ok {
		t.Fatal("Last() ok = true on empty history, want false")
	}
}
