// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package export

import (
	"fmt"
	"io"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/quickvote/models"
)

const (
	VotesSheet   = "Voting Results"
	SummarySheet = "Summary"

	ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

	timestampLayout = "2006-01-02 15:04:05"
)

// Filename returns the attachment name for an export taken at t
func Filename(t time.Time) string {
	return fmt.Sprintf("voting_results_%d.xlsx", t.UnixMilli())
}

type column struct {
	header string
	width  float64
}

// WriteWorkbook renders the audit log and the per-candidate summary as an
// xlsx workbook with two sheets.
func WriteWorkbook(w io.Writer, votes []models.VoteDetail, summary []models.ResultRow) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", VotesSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(SummarySheet); err != nil {
		return fmt.Errorf("add summary sheet: %w", err)
	}

	err := writeSheet(f, VotesSheet, "4CAF50", []column{
		{"IP Address", 25},
		{"Voted For", 25},
		{"Timestamp", 20},
	}, len(votes), func(i int) []interface{} {
		v := votes[i]
		return []interface{}{v.IPAddress, v.CandidateName, v.Timestamp.UTC().Format(timestampLayout)}
	})
	if err != nil {
		return err
	}

	err = writeSheet(f, SummarySheet, "2196F3", []column{
		{"Candidate", 25},
		{"Total Votes", 15},
	}, len(summary), func(i int) []interface{} {
		return []interface{}{summary[i].Name, summary[i].VoteCount}
	})
	if err != nil {
		return err
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeSheet(f *excelize.File, sheet, headerColor string, cols []column, n int, row func(int) []interface{}) error {
	header := make([]interface{}, len(cols))
	for i, c := range cols {
		header[i] = c.header
		name, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, name, name, c.width); err != nil {
			return fmt.Errorf("%s: set width: %w", sheet, err)
		}
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return fmt.Errorf("%s: write header: %w", sheet, err)
	}

	style, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{headerColor}},
	})
	if err != nil {
		return fmt.Errorf("%s: header style: %w", sheet, err)
	}
	last, err := excelize.CoordinatesToCellName(len(cols), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, style); err != nil {
		return fmt.Errorf("%s: apply header style: %w", sheet, err)
	}

	for i := 0; i < n; i++ {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := row(i)
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return fmt.Errorf("%s: write row %d: %w", sheet, i+2, err)
		}
	}
	return nil
}
