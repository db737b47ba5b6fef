package cyclecheck

import (
	"fmt"
	"io"
	"text/tabwriter"
	"time"

	"github.com/grailbio/base/log"
	"github.com/grailbio/base/must"
)

// Harness times validators against an input array. With the zero value
// every validator runs exactly once and that single wall-clock reading is
// the measurement, with no warm-up. Single-shot readings are noisy; set
// Repeat to collect a minimum and a mean as well.
type Harness struct {
	// Repeat is the number of timed calls per validator. Values below one
	// mean one.
	Repeat int
}

// Measurement is the outcome of timing one validator.
type Measurement struct {
	Name  string
	Valid bool
	// Elapsed is the duration of the first call.
	Elapsed time.Duration
	// Min and Mean summarize all Runs calls.
	Min  time.Duration
	Mean time.Duration
	Runs int
}

// Millis returns d in fractional milliseconds.
func Millis(d time.Duration) float64 {
	return d.Seconds() * 1000
}

// Measure calls v.Validate(arr) h.Repeat times and records the result and
// the timings. Only the call itself is timed. A validator that returns
// different results for the same array is broken and Measure panics.
func (h Harness) Measure(v Validator, arr []int32) Measurement {
	runs := max(1, h.Repeat)
	m := Measurement{Name: v.Name(), Runs: runs}
	var total time.Duration
	for r := 0; r < runs; r++ {
		start := time.Now()
		ok := v.Validate(arr)
		d := time.Since(start)
		if r == 0 {
			m.Valid, m.Elapsed, m.Min = ok, d, d
		}
		must.Truef(ok == m.Valid, "cyclecheck: %s returned %v then %v for the same array", m.Name, m.Valid, ok)
		m.Min = min(m.Min, d)
		total += d
	}
	m.Mean = total / time.Duration(runs)
	log.Debug.Printf("%s: valid=%v elapsed=%v min=%v mean=%v runs=%d", m.Name, m.Valid, m.Elapsed, m.Min, m.Mean, m.Runs)
	return m
}

// Run measures each validator in turn. Measurements never overlap.
func (h Harness) Run(vs []Validator, arr []int32) []Measurement {
	ms := make([]Measurement, 0, len(vs))
	for _, v := range vs {
		ms = append(ms, h.Measure(v, arr))
	}
	return ms
}

// Disagreements returns the names of measurements whose result differs from
// ref.
func Disagreements(ref Measurement, ms []Measurement) []string {
	var names []string
	for _, m := range ms {
		if m.Valid != ref.Valid {
			names = append(names, m.Name)
		}
	}
	return names
}

// WriteReport prints one line per measurement: strategy name, result and
// timings in milliseconds. Min and mean columns are added when any
// measurement has more than one run.
func WriteReport(w io.Writer, ms []Measurement) error {
	repeated := false
	for _, m := range ms {
		if m.Runs > 1 {
			repeated = true
		}
	}
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	if repeated {
		fmt.Fprintln(tw, "STRATEGY\tRESULT\tELAPSED\tMIN\tMEAN\tRUNS")
	} else {
		fmt.Fprintln(tw, "STRATEGY\tRESULT\tELAPSED")
	}
	for _, m := range ms {
		if repeated {
			fmt.Fprintf(tw, "%s\t%v\t%.4fms\t%.4fms\t%.4fms\t%d\n",
				m.Name, m.Valid, Millis(m.Elapsed), Millis(m.Min), Millis(m.Mean), m.Runs)
		} else {
			fmt.Fprintf(tw, "%s\t%v\t%.4fms\n", m.Name, m.Valid, Millis(m.Elapsed))
		}
	}
	return tw.Flush()
}
