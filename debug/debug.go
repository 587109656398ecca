// Package debug gates trace output behind environment variables so the
// scanner, parser, and emitter can be watched without code changes.
package debug

import (
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
	Emit  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("STRICTYAML_DEBUG_SCAN")
	d.Parse = boolEnv("STRICTYAML_DEBUG_PARSE")
	d.Emit = boolEnv("STRICTYAML_DEBUG_EMIT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Emit() bool {
	return d.Emit
}

func Printf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format, args...)
}
