// Package cyclecheck validates that an int32 array follows a fixed cyclic
// pattern and provides several interchangeable strategies for doing so.
//
// The pattern repeats every Period elements. Within one period the first
// PlusEnd positions hold +1, positions [PlusEnd, MinusEnd) hold -1 and the
// remaining positions hold 0. Config.Expected is the single definition of the
// pattern; every lookup table in the package is a cached restatement of it and
// is checked against it when built.
//
// Strategies range from a plain sequential scan to lane-based comparisons
// (4 or 8 values at a time, strided or contiguous, with recomputed or cached
// lane constants), branch-free table lookups, an assembly block compare and a
// bounded worker pool. They all implement Validator and all return the same
// answer for every input. Validators hold only read-only state and are safe
// for concurrent use.
package cyclecheck

import (
	"errors"
	"fmt"
	"runtime"
)

// Reference configuration, taken from the benchmark this package was built
// for: 48000 elements, 192 periods of 250.
const (
	DefaultLength   = 48000
	DefaultPeriod   = 250
	DefaultPlusEnd  = 50
	DefaultMinusEnd = 100
)

// Zones of a period, in order.
const (
	ZonePlus  = 0 // expects +1
	ZoneMinus = 1 // expects -1
	ZoneZero  = 2 // expects 0
)

// ErrInvalidConfig is returned when a Config cannot describe a pattern.
var ErrInvalidConfig = errors.New("cyclecheck: invalid config")

// zoneValues maps a zone index to its expected value.
var zoneValues = [3]int32{1, -1, 0}

// Config carries the constants of one validation benchmark. Validators copy
// the Config they are built with, so changing it afterwards has no effect.
type Config struct {
	// Length is the number of elements in every input array.
	Length int `yaml:"length"`
	// Period is the length of one cycle of the pattern.
	Period int `yaml:"period"`
	// PlusEnd ends the +1 zone (k1).
	PlusEnd int `yaml:"plus_end"`
	// MinusEnd ends the -1 zone (k2).
	MinusEnd int `yaml:"minus_end"`
	// Workers bounds the Parallel validator's pool. Zero means runtime.NumCPU().
	Workers int `yaml:"workers"`
	// ChunkLen is the number of indices handed to a worker at a time.
	// Zero means one period per chunk.
	ChunkLen int `yaml:"chunk_len"`
}

// DefaultConfig returns the reference configuration.
func DefaultConfig() Config {
	return Config{
		Length:   DefaultLength,
		Period:   DefaultPeriod,
		PlusEnd:  DefaultPlusEnd,
		MinusEnd: DefaultMinusEnd,
		Workers:  runtime.NumCPU(),
		ChunkLen: DefaultPeriod,
	}
}

// Validate reports whether c describes a usable pattern.
func (c Config) Validate() error {
	switch {
	case c.Length < 0:
		return fmt.Errorf("%w: negative length %d", ErrInvalidConfig, c.Length)
	case c.Period <= 0:
		return fmt.Errorf("%w: period must be positive, got %d", ErrInvalidConfig, c.Period)
	case c.PlusEnd < 0 || c.PlusEnd > c.MinusEnd || c.MinusEnd > c.Period:
		return fmt.Errorf("%w: zone bounds must satisfy 0 <= %d <= %d <= %d",
			ErrInvalidConfig, c.PlusEnd, c.MinusEnd, c.Period)
	case c.Workers < 0:
		return fmt.Errorf("%w: negative worker count %d", ErrInvalidConfig, c.Workers)
	case c.ChunkLen < 0:
		return fmt.Errorf("%w: negative chunk length %d", ErrInvalidConfig, c.ChunkLen)
	}
	return nil
}

// Zone returns the zone index of position i.
func (c Config) Zone(i int) int {
	r := i % c.Period
	switch {
	case r < c.PlusEnd:
		return ZonePlus
	case r < c.MinusEnd:
		return ZoneMinus
	default:
		return ZoneZero
	}
}

// Expected returns the value the pattern requires at index i.
func (c Config) Expected(i int) int32 {
	r := i % c.Period
	if r < c.PlusEnd {
		return 1
	}
	if r < c.MinusEnd {
		return -1
	}
	return 0
}

// Validator is one strategy for checking an array against the pattern.
type Validator interface {
	// Name identifies the strategy in reports.
	Name() string
	// Validate reports whether every element of arr matches the pattern.
	// arr must have exactly Config.Length elements.
	Validate(arr []int32) bool
}

// mustConfig panics when a validator is built from an unusable Config.
// Constructors are called with constants, so a bad Config is a programming
// error rather than an input error.
func mustConfig(c Config) Config {
	if err := c.Validate(); err != nil {
		panic(err)
	}
	return c
}

// validateLength panics if arr does not have the configured length.
func validateLength(c Config, arr []int32) {
	if len(arr) != c.Length {
		panic(fmt.Sprintf("cyclecheck: array length %d does not match configured length %d", len(arr), c.Length))
	}
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
