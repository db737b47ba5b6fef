package cyclecheck

// Strided4 gathers lanes from four equal segments of the array: step i
// compares {i, i+s, i+2s, i+3s} with s = Length/4. When s is a multiple of
// the period all four positions share one offset within their period and the
// lane constant is a broadcast; otherwise it is gathered position by
// position.
type Strided4 struct {
	cfg     Config
	stride  int
	uniform bool
}

// NewStrided4 returns the strided four-lane validator for cfg.
func NewStrided4(cfg Config) *Strided4 {
	cfg = mustConfig(cfg)
	s := cfg.Length / lanes4
	return &Strided4{cfg: cfg, stride: s, uniform: s%cfg.Period == 0}
}

// Name implements Validator.
func (v *Strided4) Name() string { return NameStrided4 }

// Validate implements Validator.
func (v *Strided4) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	s := v.stride
	for i := 0; i < s; i++ {
		got := Lane4{arr[i], arr[i+s], arr[i+2*s], arr[i+3*s]}
		var want Lane4
		if v.uniform {
			want = broadcast4(v.cfg.Expected(i))
		} else {
			want = Lane4{
				v.cfg.Expected(i), v.cfg.Expected(i + s),
				v.cfg.Expected(i + 2*s), v.cfg.Expected(i + 3*s),
			}
		}
		if got != want {
			return false
		}
	}
	return checkTail(v.cfg, arr, lanes4*s)
}

// Strided8 is Strided4 with eight segments.
type Strided8 struct {
	cfg     Config
	stride  int
	uniform bool
}

// NewStrided8 returns the strided eight-lane validator for cfg.
func NewStrided8(cfg Config) *Strided8 {
	cfg = mustConfig(cfg)
	s := cfg.Length / lanes8
	return &Strided8{cfg: cfg, stride: s, uniform: s%cfg.Period == 0}
}

// Name implements Validator.
func (v *Strided8) Name() string { return NameStrided8 }

// Validate implements Validator.
func (v *Strided8) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	s := v.stride
	for i := 0; i < s; i++ {
		var got, want Lane8
		for j := range got {
			got[j] = arr[i+j*s]
		}
		if v.uniform {
			want = broadcast8(v.cfg.Expected(i))
		} else {
			for j := range want {
				want[j] = v.cfg.Expected(i + j*s)
			}
		}
		if got != want {
			return false
		}
	}
	return checkTail(v.cfg, arr, lanes8*s)
}

// Contiguous4 reads lanes in memory order and recomputes each lane constant
// with the three-way zone split. A group that crosses a zone or period
// boundary has no single expected value; its constant comes from the cached
// lane table instead.
type Contiguous4 struct {
	cfg   Config
	table *laneTable4
}

// NewContiguous4 returns the contiguous four-lane validator for cfg.
func NewContiguous4(cfg Config) *Contiguous4 {
	cfg = mustConfig(cfg)
	return &Contiguous4{cfg: cfg, table: newLaneTable4(cfg)}
}

// Name implements Validator.
func (v *Contiguous4) Name() string { return NameContiguous4 }

// Validate implements Validator.
func (v *Contiguous4) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	n := len(arr) &^ (lanes4 - 1)
	for i := 0; i < n; i += lanes4 {
		got := Lane4(arr[i : i+lanes4])
		var want Lane4
		// Zones are contiguous within a period, so a group whose first and
		// last element share a period and a zone is uniform.
		if i%v.cfg.Period+lanes4 <= v.cfg.Period && v.cfg.Zone(i) == v.cfg.Zone(i+lanes4-1) {
			want = broadcast4(v.cfg.Expected(i))
		} else {
			want = v.table.at(i)
		}
		if got != want {
			return false
		}
	}
	return checkTail(v.cfg, arr, n)
}

// Cached4 reads lanes in memory order and takes every lane constant from a
// table precomputed over lcm(Period, 4) positions.
type Cached4 struct {
	cfg   Config
	table *laneTable4
}

// NewCached4 returns the cached four-lane validator for cfg.
func NewCached4(cfg Config) *Cached4 {
	cfg = mustConfig(cfg)
	return &Cached4{cfg: cfg, table: newLaneTable4(cfg)}
}

// Name implements Validator.
func (v *Cached4) Name() string { return NameCached4 }

// Validate implements Validator.
func (v *Cached4) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	n := len(arr) &^ (lanes4 - 1)
	for i := 0; i < n; i += lanes4 {
		if Lane4(arr[i:i+lanes4]) != v.table.at(i) {
			return false
		}
	}
	return checkTail(v.cfg, arr, n)
}

// Cached8 is Cached4 with eight-wide lanes.
type Cached8 struct {
	cfg   Config
	table *laneTable8
}

// NewCached8 returns the cached eight-lane validator for cfg.
func NewCached8(cfg Config) *Cached8 {
	cfg = mustConfig(cfg)
	return &Cached8{cfg: cfg, table: newLaneTable8(cfg)}
}

// Name implements Validator.
func (v *Cached8) Name() string { return NameCached8 }

// Validate implements Validator.
func (v *Cached8) Validate(arr []int32) bool {
	validateLength(v.cfg, arr)
	n := len(arr) &^ (lanes8 - 1)
	for i := 0; i < n; i += lanes8 {
		if Lane8(arr[i:i+lanes8]) != v.table.at(i) {
			return false
		}
	}
	return checkTail(v.cfg, arr, n)
}

// checkTail checks arr[from:] one element at a time.
func checkTail(cfg Config, arr []int32, from int) bool {
	for i := from; i < len(arr); i++ {
		if arr[i] != cfg.Expected(i) {
			return false
		}
	}
	return true
}
