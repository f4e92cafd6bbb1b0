package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	jpdate "github.com/rabitt1ove/jp-datetime"
)

// dateFormats names the string forms a date can be rendered in.
var dateFormats = map[string]func(jpdate.DateTime) string{
	"date":            jpdate.DateTime.DateString,
	"jp":              jpdate.DateTime.JPString,
	"jp-weekday":      jpdate.DateTime.JPStringWithWeekday,
	"jp-date":         jpdate.DateTime.JPDateString,
	"datetime":        jpdate.DateTime.DateTimeString,
	"datetime-second": jpdate.DateTime.DateTimeSecondString,
	"filename":        jpdate.DateTime.FileNameString,
	"time":            jpdate.DateTime.OnlyTime,
}

func validOutputFormat(f string) bool {
	switch f {
	case "text", "json", "yaml", "toml":
		return true
	}
	return false
}

// result is anything a subcommand prints. Structured formats encode the
// value itself; text uses writeText.
type result interface {
	writeText(w io.Writer) error
}

func writeResult(w io.Writer, format string, r result) error {
	switch format {
	case "text":
		return r.writeText(w)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return err
		}
		return enc.Close()
	case "toml":
		return toml.NewEncoder(w).Encode(r)
	}
	return fmt.Errorf("unknown output format %q", format)
}

// writePairs prints aligned "key  value" lines.
func writePairs(w io.Writer, pairs [][2]string) error {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}
	for _, p := range pairs {
		if _, err := fmt.Fprintf(w, "%-*s  %s\n", width, p[0], p[1]); err != nil {
			return err
		}
	}
	return nil
}
