package cyclecheck

import (
	"errors"
	"fmt"
	"slices"
)

// Strategy names, as returned by Validator.Name.
const (
	NameScalar          = "scalar"
	NameParallel        = "parallel"
	NameStrided4        = "strided4"
	NameStrided8        = "strided8"
	NameContiguous4     = "contiguous4"
	NameCached4         = "cached4"
	NameCached8         = "cached8"
	NameBranchless      = "branchless"
	NameBranchlessLanes = "branchless-lanes"
	NameBlock           = "block"
	NameVek             = "vek"
)

var names = []string{
	NameScalar, NameParallel, NameStrided4, NameStrided8, NameContiguous4,
	NameCached4, NameCached8, NameBranchless, NameBranchlessLanes, NameBlock, NameVek,
}

// ErrUnknownValidator is returned by Lookup for names All does not produce.
var ErrUnknownValidator = errors.New("cyclecheck: unknown validator")

// All returns one validator of every strategy for cfg, scalar first so it
// can serve as the reference in reports.
func All(cfg Config) []Validator {
	return []Validator{
		NewScalar(cfg),
		NewParallel(cfg),
		NewStrided4(cfg),
		NewStrided8(cfg),
		NewContiguous4(cfg),
		NewCached4(cfg),
		NewCached8(cfg),
		NewBranchless(cfg),
		NewBranchlessLanes(cfg),
		NewBlock(cfg),
		NewVek(cfg),
	}
}

// Names returns the strategy names in the order All uses.
func Names() []string {
	return slices.Clone(names)
}

// Lookup returns the validators named in names, in the given order.
func Lookup(cfg Config, names ...string) ([]Validator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	all := All(cfg)
	byName := make(map[string]Validator, len(all))
	for _, v := range all {
		byName[v.Name()] = v
	}
	vs := make([]Validator, 0, len(names))
	for _, name := range names {
		v, ok := byName[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownValidator, name)
		}
		vs = append(vs, v)
	}
	return vs, nil
}
