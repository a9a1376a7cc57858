package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Extract bool
	Gen     bool
	Load    bool
}

var d *debug

func init() {
	d = &debug{}
	d.Extract = boolEnv("DERIVE_DEBUG_EXTRACT")
	d.Gen = boolEnv("DERIVE_DEBUG_GEN")
	d.Load = boolEnv("DERIVE_DEBUG_LOAD")
	if d.Extract || d.Gen || d.Load {
		setLogger(newStderrLogger())
	}
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

// EnableAll turns on every debug toggle, as the -v flag of derive-gen does.
func EnableAll() {
	d.Extract = true
	d.Gen = true
	d.Load = true
	setLogger(newStderrLogger())
}

func Extract() bool {
	return d.Extract
}
func Gen() bool {
	return d.Gen
}
func Load() bool {
	return d.Load
}
