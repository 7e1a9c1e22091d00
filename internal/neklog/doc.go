// Package neklog parses Nek5000 logfiles.
//
// A running simulation appends one summary line per time step:
//
//	Step     42, t= 4.2000000E-02, DT= 1.0000000E-03, C=  0.450  1.2340E+01  5.6700E-01
//
// carrying the step number, solution time, time step size, CFL number, and
// the accumulated and per-step wall clock times. The package extracts these
// six fields into a History of parallel series, re-reading the whole file
// each time it is asked. There is no incremental or streaming parse: the
// file is small relative to the poll cadence and a full re-read keeps the
// series trivially consistent after restarts or truncation.
//
// A missing logfile is not an error. Monitors are routinely started before
// the solver, so ReadFile and Tail return empty results until the file
// appears.
package neklog
