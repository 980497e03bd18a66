package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Intern bool
	Tagged bool
}

var d *debug

func init() {
	d = &debug{}
	d.Intern = boolEnv("EDN_DEBUG_INTERN")
	d.Tagged = boolEnv("EDN_DEBUG_TAGGED")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Intern() bool {
	return d.Intern
}
func Tagged() bool {
	return d.Tagged
}
