package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	jpdate "github.com/rabitt1ove/jp-datetime"
)

// readDate builds a value from a command argument, noting the fallback to
// the current time when --verbose is set.
func (a *app) readDate(s string) jpdate.DateTime {
	if v, ok := jpdate.ParseStrict(s); ok {
		return v
	}
	a.logf("could not read %q as a date, using the current time", s)
	return jpdate.Parse(s)
}

type catalogue struct {
	JP             string `json:"jp" yaml:"jp" toml:"jp"`
	JPWeekday      string `json:"jp_weekday" yaml:"jp_weekday" toml:"jp_weekday"`
	JPDate         string `json:"jp_date" yaml:"jp_date" toml:"jp_date"`
	Date           string `json:"date" yaml:"date" toml:"date"`
	DateTime       string `json:"datetime" yaml:"datetime" toml:"datetime"`
	DateTimeSecond string `json:"datetime_second" yaml:"datetime_second" toml:"datetime_second"`
	FileName       string `json:"file_name" yaml:"file_name" toml:"file_name"`
	Time           string `json:"time" yaml:"time" toml:"time"`
	Weekday        string `json:"weekday" yaml:"weekday" toml:"weekday"`
	Unix           int64  `json:"unix" yaml:"unix" toml:"unix"`
}

func newCatalogue(v jpdate.DateTime) catalogue {
	return catalogue{
		JP:             v.JPString(),
		JPWeekday:      v.JPStringWithWeekday(),
		JPDate:         v.JPDateString(),
		Date:           v.DateString(),
		DateTime:       v.DateTimeString(),
		DateTimeSecond: v.DateTimeSecondString(),
		FileName:       v.FileNameString(),
		Time:           v.OnlyTime(),
		Weekday:        v.Weekday().String(),
		Unix:           v.Unix(),
	}
}

func (c catalogue) writeText(w io.Writer) error {
	return writePairs(w, [][2]string{
		{"jp", c.JP},
		{"jp-weekday", c.JPWeekday},
		{"jp-date", c.JPDate},
		{"date", c.Date},
		{"datetime", c.DateTime},
		{"datetime-second", c.DateTimeSecond},
		{"filename", c.FileName},
		{"time", c.Time},
		{"weekday", c.Weekday},
		{"unix", strconv.FormatInt(c.Unix, 10)},
	})
}

func newShowCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "show [date]",
		Short: "Print every form of a date (default: now)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := jpdate.Now()
			if len(args) == 1 {
				v = a.readDate(args[0])
			}
			return writeResult(cmd.OutOrStdout(), a.cfg.Output.Format, newCatalogue(v))
		},
	}
}

type slotList struct {
	Date  string   `json:"date" yaml:"date" toml:"date"`
	Slots []string `json:"slots" yaml:"slots" toml:"slots"`
}

func (s slotList) writeText(w io.Writer) error {
	for _, slot := range s.Slots {
		if _, err := fmt.Fprintln(w, slot); err != nil {
			return err
		}
	}
	return nil
}

func newSlotsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "slots <date>",
		Short: "Print the half-hour appointment slots from 08:00 to 19:30",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.readDate(args[0])
			out := slotList{
				Date:  v.DateString(),
				Slots: jpdate.GenerateSlots(args[0]),
			}
			return writeResult(cmd.OutOrStdout(), a.cfg.Output.Format, out)
		},
	}
}

type shiftResult struct {
	Date       string `json:"date" yaml:"date" toml:"date"`
	Days       int    `json:"days" yaml:"days" toml:"days"`
	Added      string `json:"added" yaml:"added" toml:"added"`
	Subtracted string `json:"subtracted" yaml:"subtracted" toml:"subtracted"`
	AfterDay   string `json:"after_day" yaml:"after_day" toml:"after_day"`
}

func (s shiftResult) writeText(w io.Writer) error {
	return writePairs(w, [][2]string{
		{"date", s.Date},
		{"days", strconv.Itoa(s.Days)},
		{"added", s.Added},
		{"subtracted", s.Subtracted},
		{"after-day", s.AfterDay},
	})
}

func newShiftCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "shift <date> <days>",
		Short: "Move a date forward and backward by whole days",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("days must be an integer: %w", err)
			}
			v := a.readDate(args[0])
			out := shiftResult{
				Date:       v.DateTimeSecondString(),
				Days:       n,
				Added:      v.AddDate(n).DateTimeSecondString(),
				Subtracted: v.SubtractDate(n).DateTimeSecondString(),
				AfterDay:   v.AfterDay(n),
			}
			return writeResult(cmd.OutOrStdout(), a.cfg.Output.Format, out)
		},
	}
}

type comparison struct {
	Date       string `json:"date" yaml:"date" toml:"date"`
	Other      string `json:"other" yaml:"other" toml:"other"`
	IsBefore   bool   `json:"is_before" yaml:"is_before" toml:"is_before"`
	IsSameDate bool   `json:"is_same_date" yaml:"is_same_date" toml:"is_same_date"`
	DaysDiff   *int   `json:"days_diff,omitempty" yaml:"days_diff,omitempty" toml:"days_diff,omitempty"`
}

func (c comparison) writeText(w io.Writer) error {
	diff := "n/a"
	if c.DaysDiff != nil {
		diff = strconv.Itoa(*c.DaysDiff)
	}
	return writePairs(w, [][2]string{
		{"date", c.Date},
		{"other", c.Other},
		{"is-before", strconv.FormatBool(c.IsBefore)},
		{"is-same-date", strconv.FormatBool(c.IsSameDate)},
		{"days-diff", diff},
	})
}

func newCompareCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "compare <date> <other>",
		Short: "Compare two dates",
		Long: `Compare reports whether date is before other, whether both name the same
instant and how many whole days lie between them.

other is read as given for is-before and days-diff ("2024-03-01" is UTC
midnight) but with "-" rewritten to "/" for is-same-date (JST midnight).`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			v := a.readDate(args[0])
			out := comparison{
				Date:       v.DateTimeSecondString(),
				Other:      args[1],
				IsBefore:   v.IsBefore(args[1]),
				IsSameDate: v.IsSameDate(args[1]),
			}
			if n, ok := v.DaysDiff(args[1]); ok {
				out.DaysDiff = &n
			} else {
				a.logf("could not read %q, days-diff is undefined", args[1])
			}
			return writeResult(cmd.OutOrStdout(), a.cfg.Output.Format, out)
		},
	}
}

type newYear struct {
	Years int    `json:"years" yaml:"years" toml:"years"`
	Date  string `json:"date" yaml:"date" toml:"date"`
}

func (n newYear) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, n.Date)
	return err
}

func newNewYearCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "newyear <years>",
		Short: "Print January 1st, the given number of years from this year",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("years must be an integer: %w", err)
			}
			out := newYear{Years: n, Date: jpdate.Now().YearsLaterNewYearsDate(n)}
			return writeResult(cmd.OutOrStdout(), a.cfg.Output.Format, out)
		},
	}
}
