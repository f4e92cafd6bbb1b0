// Command jpdate prints the Japanese and ISO forms of a date, the day's
// appointment slots, day arithmetic and comparisons, and converts date
// columns of CSV files (UTF-8, Shift_JIS or EUC-JP) to a chosen form.
//
// Usage:
//
//	jpdate show 2024-03-05T09:05:30
//	jpdate slots 2024/03/01 --output yaml
//	jpdate convert --encoding shift_jis --header --format jp-weekday syukujitsu.csv
package main

import (
	"log"
	"os"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("jpdate: ")

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
