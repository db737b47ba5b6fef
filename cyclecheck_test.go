package cyclecheck

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpectedReferenceZones(t *testing.T) {
	cfg := DefaultConfig()
	tests := []struct {
		index int
		want  int32
	}{
		{0, 1},
		{49, 1},
		{50, -1},
		{99, -1},
		{100, 0},
		{249, 0},
		{250, 1},
		{299, 1},
		{300, -1},
		{24050, -1},
		{47999, 0},
	}
	for _, tt := range tests {
		assert.Equalf(t, tt.want, cfg.Expected(tt.index), "index %d", tt.index)
	}
}

func TestZoneMatchesExpected(t *testing.T) {
	for _, cfg := range testConfigs() {
		for i := 0; i < 3*cfg.Period; i++ {
			assert.Equalf(t, zoneValues[cfg.Zone(i)], cfg.Expected(i), "period %d index %d", cfg.Period, i)
		}
	}
}

func TestConfigValidate(t *testing.T) {
	assert.NoError(t, DefaultConfig().Validate())

	bad := []Config{
		{Length: -1, Period: 10, PlusEnd: 1, MinusEnd: 2},
		{Length: 10, Period: 0},
		{Length: 10, Period: 10, PlusEnd: 5, MinusEnd: 4},
		{Length: 10, Period: 10, PlusEnd: -1, MinusEnd: 4},
		{Length: 10, Period: 10, PlusEnd: 1, MinusEnd: 11},
		{Length: 10, Period: 10, PlusEnd: 1, MinusEnd: 2, Workers: -1},
		{Length: 10, Period: 10, PlusEnd: 1, MinusEnd: 2, ChunkLen: -1},
	}
	for _, cfg := range bad {
		assert.ErrorIsf(t, cfg.Validate(), ErrInvalidConfig, "%+v", cfg)
	}
}

func TestConstructorsRejectInvalidConfig(t *testing.T) {
	cfg := Config{Length: 10, Period: 0}
	assert.Panics(t, func() { NewScalar(cfg) })
	assert.Panics(t, func() { NewCached4(cfg) })
	assert.Panics(t, func() { All(cfg) })
}

func TestValidateLengthMismatchPanics(t *testing.T) {
	cfg := smallConfig()
	for _, v := range All(cfg) {
		assert.Panicsf(t, func() { v.Validate(make([]int32, cfg.Length+1)) }, "%s", v.Name())
	}
}

func TestGCDAndLCM(t *testing.T) {
	assert.Equal(t, 50, gcd(250, 100))
	assert.Equal(t, 250, gcd(250, 0))
	assert.Equal(t, 500, lcm(250, 4))
	assert.Equal(t, 1000, lcm(250, 8))
	assert.Equal(t, 296, lcm(37, 8))
}

func TestExpectedRunMatchesPattern(t *testing.T) {
	for _, cfg := range testConfigs() {
		run := expectedRun(cfg, lcm(cfg.Period, lanes8))
		require.Len(t, run, lcm(cfg.Period, lanes8))
		for i, v := range run {
			assert.Equalf(t, cfg.Expected(i), v, "period %d index %d", cfg.Period, i)
		}
	}
}

func TestLaneTablesMatchPattern(t *testing.T) {
	for _, cfg := range testConfigs() {
		t4 := newLaneTable4(cfg)
		t8 := newLaneTable8(cfg)
		for i := 0; i < 2*t8.span; i += lanes4 {
			want := Lane4{cfg.Expected(i), cfg.Expected(i + 1), cfg.Expected(i + 2), cfg.Expected(i + 3)}
			assert.Equalf(t, want, t4.at(i), "period %d lane4 at %d", cfg.Period, i)
		}
		for i := 0; i < 2*t8.span; i += lanes8 {
			var want Lane8
			for j := range want {
				want[j] = cfg.Expected(i + j)
			}
			assert.Equalf(t, want, t8.at(i), "period %d lane8 at %d", cfg.Period, i)
		}
	}
}

func TestReferenceLaneTableSpansTwoPeriods(t *testing.T) {
	t4 := newLaneTable4(DefaultConfig())
	assert.Equal(t, 2*DefaultPeriod, t4.span)
	assert.Len(t, t4.lanes, 125)
	// Group 62 covers indices 248..251 and crosses into the next period.
	assert.Equal(t, Lane4{0, 0, 1, 1}, t4.lanes[62])
	// Group 12 covers 48..51 and crosses from the +1 into the -1 zone.
	assert.Equal(t, Lane4{1, 1, -1, -1}, t4.lanes[12])
}

func TestZoneTable(t *testing.T) {
	zt := newZoneTable(DefaultConfig())
	assert.Equal(t, 50, zt.cell)
	assert.Equal(t, []int32{1, -1, 0, 0, 0}, zt.values)

	for _, cfg := range testConfigs() {
		zt := newZoneTable(cfg)
		for i := 0; i < 2*cfg.Period; i++ {
			assert.Equalf(t, cfg.Expected(i), zt.at(i, cfg.Period), "period %d index %d", cfg.Period, i)
		}
	}
}
