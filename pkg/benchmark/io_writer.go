package benchmark

import (
	"encoding/csv"
	"io"
	"os"
	"strconv"

	"github.com/samber/lo"
)

var csvHeader = []string{"n", "m", "k", "k_type", "brute_time", "brute_result", "heuristic_time", "heuristic_result"}

// WriteCSV. durations are written in seconds
func WriteCSV(w io.Writer, rows []Row) error {
	writer := csv.NewWriter(w)

	records := lo.Map(rows, func(r Row, _ int) []string {
		return []string{
			strconv.Itoa(r.N),
			strconv.Itoa(r.M),
			strconv.Itoa(r.K),
			r.KType,
			strconv.FormatFloat(r.BruteTime.Seconds(), 'f', -1, 64),
			strconv.FormatBool(r.BruteResult),
			strconv.FormatFloat(r.HeuristicTime.Seconds(), 'f', -1, 64),
			strconv.FormatBool(r.HeuristicResult),
		}
	})

	if err := writer.Write(csvHeader); err != nil {
		return err
	}
	return writer.WriteAll(records)
}

func SaveCSV(filename string, rows []Row) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := WriteCSV(f, rows); err != nil {
		return err
	}
	return f.Sync()
}
