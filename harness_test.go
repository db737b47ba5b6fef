package cyclecheck

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flipValidator alternates its answer on every call.
type flipValidator struct{ n int }

func (f *flipValidator) Name() string { return "flip" }

func (f *flipValidator) Validate(arr []int32) bool {
	f.n++
	return f.n%2 == 1
}

func TestMeasureSingleShot(t *testing.T) {
	cfg := smallConfig()
	m := Harness{}.Measure(NewScalar(cfg), patternArray(cfg))
	assert.Equal(t, "scalar", m.Name)
	assert.True(t, m.Valid)
	assert.Equal(t, 1, m.Runs)
	assert.Equal(t, m.Elapsed, m.Min)
	assert.Equal(t, m.Elapsed, m.Mean)
	assert.GreaterOrEqual(t, m.Elapsed, time.Duration(0))
}

func TestMeasureRepeat(t *testing.T) {
	cfg := smallConfig()
	arr := patternArray(cfg)
	arr[10] = 9
	m := Harness{Repeat: 5}.Measure(NewCached8(cfg), arr)
	assert.False(t, m.Valid)
	assert.Equal(t, 5, m.Runs)
	assert.LessOrEqual(t, m.Min, m.Elapsed)
	assert.LessOrEqual(t, m.Min, m.Mean)
}

func TestMeasureInconsistentValidatorPanics(t *testing.T) {
	assert.Panics(t, func() {
		Harness{Repeat: 2}.Measure(&flipValidator{}, nil)
	})
	assert.NotPanics(t, func() {
		Harness{}.Measure(&flipValidator{}, nil)
	})
}

func TestRunOrderAndDisagreements(t *testing.T) {
	cfg := smallConfig()
	arr := patternArray(cfg)
	vs := All(cfg)
	ms := Harness{}.Run(vs, arr)
	require.Len(t, ms, len(vs))
	for i, m := range ms {
		assert.Equal(t, vs[i].Name(), m.Name)
		assert.True(t, m.Valid, m.Name)
	}
	assert.Empty(t, Disagreements(ms[0], ms[1:]))

	ms[3].Valid = false
	ms[7].Valid = false
	assert.Equal(t, []string{ms[3].Name, ms[7].Name}, Disagreements(ms[0], ms[1:]))
}

func TestMillis(t *testing.T) {
	assert.InDelta(t, 1.5, Millis(1500*time.Microsecond), 1e-9)
	assert.InDelta(t, 0.0001, Millis(100*time.Nanosecond), 1e-12)
}

func TestWriteReport(t *testing.T) {
	ms := []Measurement{
		{Name: "scalar", Valid: true, Elapsed: 1500 * time.Microsecond, Min: 1500 * time.Microsecond, Mean: 1500 * time.Microsecond, Runs: 1},
		{Name: "cached8", Valid: false, Elapsed: 250 * time.Microsecond, Min: 250 * time.Microsecond, Mean: 250 * time.Microsecond, Runs: 1},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, ms))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, []string{"STRATEGY", "RESULT", "ELAPSED"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"scalar", "true", "1.5000ms"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"cached8", "false", "0.2500ms"}, strings.Fields(lines[2]))
}

func TestWriteReportRepeated(t *testing.T) {
	ms := []Measurement{
		{Name: "block", Valid: true, Elapsed: 2 * time.Millisecond, Min: time.Millisecond, Mean: 1500 * time.Microsecond, Runs: 4},
	}
	var buf bytes.Buffer
	require.NoError(t, WriteReport(&buf, ms))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, []string{"STRATEGY", "RESULT", "ELAPSED", "MIN", "MEAN", "RUNS"}, strings.Fields(lines[0]))
	assert.Equal(t, []string{"block", "true", "2.0000ms", "1.0000ms", "1.5000ms", "4"}, strings.Fields(lines[1]))
}
