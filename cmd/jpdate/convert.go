package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"

	jpdate "github.com/rabitt1ove/jp-datetime"
)

// maxInputSize caps how much of a CSV input is read.
const maxInputSize = 64 * 1024 * 1024

// lookupEncoding maps an encoding name to its decoder source.
func lookupEncoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(name) {
	case "", "utf-8", "utf8":
		return unicode.UTF8BOM, nil
	case "shift_jis", "shift-jis", "sjis", "cp932":
		return japanese.ShiftJIS, nil
	case "euc-jp", "eucjp":
		return japanese.EUCJP, nil
	}
	return nil, fmt.Errorf("unknown input encoding %q (want utf-8, shift_jis or euc-jp)", name)
}

type convertOptions struct {
	encoding string
	header   bool
	column   int
	format   string
}

func newConvertCmd(a *app) *cobra.Command {
	var opts convertOptions

	cmd := &cobra.Command{
		Use:   "convert [file]",
		Short: "Append a formatted date column to a CSV file",
		Long: `Convert reads CSV from file (or stdin), reads the date in the chosen column,
and writes the rows back as UTF-8 CSV with the date rendered in --format
appended as a last column. Full-width digits and separators in the date
column are folded to their ASCII forms first.

Formats: date, jp, jp-weekday, jp-date, datetime, datetime-second,
filename, time.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("encoding") {
				opts.encoding = a.cfg.Input.Encoding
			}
			if !flags.Changed("header") {
				opts.header = a.cfg.Input.Header
			}
			if !flags.Changed("column") {
				opts.column = a.cfg.Convert.Column
			}
			if !flags.Changed("format") {
				opts.format = a.cfg.Convert.Format
			}

			in := cmd.InOrStdin()
			name := "stdin"
			if len(args) == 1 {
				f, err := os.Open(args[0])
				if err != nil {
					return fmt.Errorf("opening input: %w", err)
				}
				defer f.Close()
				in, name = f, args[0]
			}

			a.logf("converting %s (%s, column %d, format %s)", name, opts.encoding, opts.column, opts.format)
			n, err := a.convert(in, cmd.OutOrStdout(), opts)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}
			a.logf("wrote %d rows", n)
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.encoding, "encoding", "e", defaultEncoding, "input encoding: utf-8, shift_jis or euc-jp")
	cmd.Flags().BoolVar(&opts.header, "header", false, "treat the first row as a header")
	cmd.Flags().IntVarP(&opts.column, "column", "c", 0, "zero-based index of the date column")
	cmd.Flags().StringVarP(&opts.format, "format", "f", defaultConvertFormat, "date format for the new column")
	return cmd
}

// convert copies CSV rows from r to w, appending the formatted date of
// opts.column to each row. Rows whose date cannot be read get an empty cell
// and a warning. It returns the number of data rows written.
func (a *app) convert(r io.Reader, w io.Writer, opts convertOptions) (int, error) {
	render, ok := dateFormats[opts.format]
	if !ok {
		return 0, fmt.Errorf("unknown date format %q", opts.format)
	}
	if opts.column < 0 {
		return 0, fmt.Errorf("column must not be negative, got %d", opts.column)
	}
	enc, err := lookupEncoding(opts.encoding)
	if err != nil {
		return 0, err
	}

	limited := io.LimitReader(r, maxInputSize)
	reader := csv.NewReader(transform.NewReader(limited, enc.NewDecoder()))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	writer := csv.NewWriter(w)

	rows := 0
	lineNum := 0
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return rows, fmt.Errorf("line %d: %w", lineNum+1, err)
		}
		lineNum++

		if lineNum == 1 && opts.header {
			if err := writer.Write(append(record, opts.format)); err != nil {
				return rows, err
			}
			continue
		}

		if opts.column >= len(record) {
			return rows, fmt.Errorf("line %d: expected at least %d columns, got %d", lineNum, opts.column+1, len(record))
		}

		cell := width.Fold.String(strings.TrimSpace(record[opts.column]))
		out := ""
		if v, ok := jpdate.ParseStrict(cell); ok {
			out = render(v)
		} else {
			a.log.Printf("line %d: could not read %q as a date", lineNum, record[opts.column])
		}

		if err := writer.Write(append(record, out)); err != nil {
			return rows, err
		}
		rows++
	}

	writer.Flush()
	return rows, writer.Error()
}
