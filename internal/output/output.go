// Package output renders CLI results: pretty-printed raw JSON-RPC responses
// and the registry listing table.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rodaine/table"

	"github.com/dmagro/ethrpc"
)

var (
	green = color.New(color.FgGreen).SprintFunc()
	red   = color.New(color.FgRed).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
)

// DisableColors turns off all color output, for --no-color and piped output.
func DisableColors() {
	color.NoColor = true
}

// RenderResponse pretty-prints a raw JSON-RPC response body. The body is not
// interpreted beyond peeking for an "error" member to pick the status color.
func RenderResponse(w io.Writer, method string, raw json.RawMessage) error {
	status := green("ok")
	var probe struct {
		Error json.RawMessage `json:"error"`
	}
	if err := json.Unmarshal(raw, &probe); err == nil && len(probe.Error) > 0 && string(probe.Error) != "null" {
		status = red("rpc error")
	}

	var pretty bytes.Buffer
	if err := json.Indent(&pretty, raw, "", "  "); err != nil {
		// Not JSON at all; show it verbatim rather than failing.
		fmt.Fprintf(w, "%s %s\n%s\n", bold(method), status, raw)
		return nil
	}

	fmt.Fprintf(w, "%s %s\n%s\n", bold(method), status, pretty.String())
	return nil
}

// RenderMethods prints the registry listing as a table of client name, wire
// name and request id.
func RenderMethods(w io.Writer, descriptors []*ethrpc.MethodDescriptor) {
	headerFmt := color.New(color.FgCyan, color.Underline).SprintfFunc()

	tbl := table.New("Client Name", "Wire Name", "ID").
		WithWriter(w).
		WithHeaderFormatter(headerFmt)
	for _, d := range descriptors {
		tbl.AddRow(d.ClientName, d.WireName, d.ID)
	}
	tbl.Print()
}

// Errorf prints an error line in red.
func Errorf(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", red("Error:"), fmt.Sprintf(format, args...))
}

// Infof prints an informational line in cyan.
func Infof(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s\n", cyan(fmt.Sprintf(format, args...)))
}
