// Package xlsx writes roster exports as Excel workbooks.
package xlsx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/bnema/roster-cli/internal/application"
	"github.com/xuri/excelize/v2"
)

const (
	DefaultFileName = "characters.xlsx"
	SheetName       = "Characters"
)

var headerRow = []any{"ID", "Name", "Class", "Position"}

func Write(w io.Writer, report application.ExportReport) error {
	f, err := build(report)
	if err != nil {
		return err
	}

	writeErr := f.Write(w)
	closeErr := f.Close()
	if writeErr != nil {
		return fmt.Errorf("write workbook: %w", writeErr)
	}
	if closeErr != nil {
		return fmt.Errorf("close workbook: %w", closeErr)
	}
	return nil
}

// WriteFile writes the workbook next to path and renames it into place.
func WriteFile(path string, report application.ExportReport) (err error) {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".characters-*.xlsx")
	if err != nil {
		return fmt.Errorf("create temp export file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := Write(tmp, report); err != nil {
		return errors.Join(err, tmp.Close())
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp export file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace export file: %w", err)
	}
	return nil
}

func build(report application.ExportReport) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, errors.Join(fmt.Errorf("name sheet: %w", err), f.Close())
	}

	if err := f.SetSheetRow(SheetName, "A1", &headerRow); err != nil {
		return nil, errors.Join(fmt.Errorf("write header: %w", err), f.Close())
	}

	for i, row := range report.Rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, errors.Join(err, f.Close())
		}

		values := []any{int64(row.ID), row.Name, string(row.Class), string(row.Role)}
		if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
			return nil, errors.Join(fmt.Errorf("write row %d: %w", row.ID, err), f.Close())
		}
	}

	return f, nil
}
