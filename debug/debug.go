package debug

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
)

type debug struct {
	Mutate  bool
	Roles   bool
	Compile bool
	Decode  bool
	Script  bool
}

var d *debug

func init() {
	d = &debug{}
	d.Mutate = boolEnv("LM_DEBUG_MUTATE")
	d.Roles = boolEnv("LM_DEBUG_ROLES")
	d.Compile = boolEnv("LM_DEBUG_COMPILE")
	d.Decode = boolEnv("LM_DEBUG_DECODE")
	d.Script = boolEnv("LM_DEBUG_SCRIPT")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Mutate() bool {
	return d.Mutate
}
func Roles() bool {
	return d.Roles
}
func Compile() bool {
	return d.Compile
}
func Decode() bool {
	return d.Decode
}
func Script() bool {
	return d.Script
}

func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", v)
		return
	}
	os.Stderr.Write(d)
}
