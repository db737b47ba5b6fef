package cyclecheck

// Scalar is the reference strategy: one oracle evaluation per element, in
// index order, stopping at the first mismatch.
type Scalar struct {
	cfg Config
}

// NewScalar returns the sequential validator for cfg.
func NewScalar(cfg Config) *Scalar {
	return &Scalar{cfg: mustConfig(cfg)}
}

// Name implements Validator.
func (s *Scalar) Name() string { return NameScalar }

// Validate implements Validator.
func (s *Scalar) Validate(arr []int32) bool {
	validateLength(s.cfg, arr)
	for i, v := range arr {
		if v != s.cfg.Expected(i) {
			return false
		}
	}
	return true
}
