package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/huangsam/teamdisc/internal/contract"
	"github.com/huangsam/teamdisc/schema"
	"github.com/olekukonko/tablewriter"
)

// PrintStatus outputs the profile store status.
func PrintStatus(status schema.StoreStatus, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSON(w, status)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVWithHeader(w, []string{"field", "value"}, func(cw *csv.Writer) error {
				return cw.WriteAll(statusRows(status))
			})
		}, "Wrote CSV")
	case schema.ParquetOut:
		return errParquetUnsupported
	default:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeStatusTable(w, status)
		}, "Wrote table")
	}
}

func writeStatusTable(w io.Writer, status schema.StoreStatus) error {
	table := tablewriter.NewWriter(w)
	table.Header([]string{"Field", "Value"})
	if err := table.Bulk(statusRows(status)); err != nil {
		return err
	}
	return table.Render()
}

func statusRows(status schema.StoreStatus) [][]string {
	return [][]string{
		{"Backend", status.Backend},
		{"Connected", strconv.FormatBool(status.Connected)},
		{"Target", defaultCell(status.Target)},
		{"Schema version", fmt.Sprintf("%d", status.SchemaVersion)},
		{"Profiles", strconv.FormatInt(status.TotalProfiles, 10)},
		{"Departments", strconv.FormatInt(status.Departments, 10)},
		{"Oldest profile", formatTime(status.OldestProfileAt)},
		{"Latest profile", formatTime(status.LatestProfileAt)},
	}
}
