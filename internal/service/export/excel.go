package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/m04kA/SMC-HotelDashboard/internal/domain"
	"github.com/m04kA/SMC-HotelDashboard/internal/service/shaxmatka"
)

// SheetName лист с шахматкой
const SheetName = "Shaxmatka"

// Первые две колонки: номер и вместимость, дни начинаются с третьей
const firstDayColumn = 3

// tierColors цвет заливки ячейки по категории загрузки
var tierColors = map[domain.Tier]string{
	domain.TierVacant: "#FFFFFF",
	domain.TierKok:    "#9EC5FE",
	domain.TierSariq:  "#FFE69C",
	domain.TierSabzi:  "#FEB272",
	domain.TierQizil:  "#F1AEB5",
}

var thinBorder = []excelize.Border{
	{Type: "left", Color: "BFBFBF", Style: 1},
	{Type: "top", Color: "BFBFBF", Style: 1},
	{Type: "bottom", Color: "BFBFBF", Style: 1},
	{Type: "right", Color: "BFBFBF", Style: 1},
}

// GridToXLSX выгружает шахматку в XLSX: строка заголовка с днями,
// по строке на номер, в ячейке "занято/вместимость" с заливкой по категории загрузки.
func GridToXLSX(grid *shaxmatka.Grid) ([]byte, error) {
	if grid == nil {
		return nil, fmt.Errorf("export: grid is nil")
	}

	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{"#E6F3FF"}, Pattern: 1},
		Border:    thinBorder,
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create header style: %w", err)
	}

	tierStyles := make(map[domain.Tier]int, len(tierColors))
	for tier, color := range tierColors {
		style, err := f.NewStyle(&excelize.Style{
			Fill:      excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
			Border:    thinBorder,
			Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create %s style: %w", tier, err)
		}
		tierStyles[tier] = style
	}

	// Заголовок
	headers := []interface{}{"Xona", "Sig‘im"}
	for _, day := range grid.Days {
		headers = append(headers, day.Label)
	}
	if err := f.SetSheetRow(SheetName, "A1", &headers); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}
	lastHeader, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return nil, fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellStyle(SheetName, "A1", lastHeader, headerStyle); err != nil {
		return nil, fmt.Errorf("failed to set header style: %w", err)
	}

	// Строки номеров
	for i, row := range grid.Rows {
		rowIdx := i + 2

		if err := setCell(f, 1, rowIdx, row.Number); err != nil {
			return nil, err
		}
		if err := setCell(f, 2, rowIdx, row.Capacity); err != nil {
			return nil, err
		}

		for j, cell := range row.Cells {
			name, err := excelize.CoordinatesToCellName(firstDayColumn+j, rowIdx)
			if err != nil {
				return nil, fmt.Errorf("failed to convert coordinates: %w", err)
			}
			if cell.CountLabel != "" {
				if err := f.SetCellValue(SheetName, name, cell.CountLabel); err != nil {
					return nil, fmt.Errorf("failed to set cell %s: %w", name, err)
				}
			}
			if err := f.SetCellStyle(SheetName, name, name, tierStyles[cell.Tier]); err != nil {
				return nil, fmt.Errorf("failed to set style of %s: %w", name, err)
			}
		}
	}

	if err := f.SetColWidth(SheetName, "A", "B", 10); err != nil {
		return nil, fmt.Errorf("failed to set column width: %w", err)
	}
	if len(grid.Days) > 0 {
		first, _ := excelize.ColumnNumberToName(firstDayColumn)
		last, _ := excelize.ColumnNumberToName(firstDayColumn + len(grid.Days) - 1)
		if err := f.SetColWidth(SheetName, first, last, 9); err != nil {
			return nil, fmt.Errorf("failed to set column width: %w", err)
		}
	}

	// Закрепляем заголовок и колонки номера и вместимости
	if err := f.SetPanes(SheetName, &excelize.Panes{
		Freeze:      true,
		XSplit:      2,
		YSplit:      1,
		TopLeftCell: "C2",
		ActivePane:  "bottomRight",
	}); err != nil {
		return nil, fmt.Errorf("failed to freeze panes: %w", err)
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("failed to write to buffer: %w", err)
	}
	return buf.Bytes(), nil
}

func setCell(f *excelize.File, col, row int, value interface{}) error {
	cell, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return fmt.Errorf("failed to convert coordinates: %w", err)
	}
	if err := f.SetCellValue(SheetName, cell, value); err != nil {
		return fmt.Errorf("failed to set cell %s: %w", cell, err)
	}
	return nil
}
