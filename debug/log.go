package debug

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Out receives all trace output.
var Out io.Writer = os.Stderr

// Logf writes a formatted trace line to stderr. Maps, slices and
// json.Number arguments are rendered as indented JSON.
func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, json.Number:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case fmt.Stringer:
			args[i] = x.String()
		default:
		}
	}
	fmt.Fprintf(Out, msg, args...)
}

// LogAny writes v as a single line of JSON, or with %v if it cannot be
// marshaled.
func LogAny(v any) {
	d, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(Out, "%v\n", v)
		return
	}
	Out.Write(append(d, '\n'))
}
