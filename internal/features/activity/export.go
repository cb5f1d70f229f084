package activity

import (
	"context"
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
)

var exportColumns = []struct {
	Header string
	Value  func(a Activity) any
}{
	{"CODATIVIDADE", func(a Activity) any { return a.ID }},
	{"CODLEAD", func(a Activity) any { return a.LeadID.String() }},
	{"TIPO", func(a Activity) any { return string(a.Type) }},
	{"DESCRICAO", func(a Activity) any { return a.Description }},
	{"DATA_HORA", func(a Activity) any { return a.CreatedAt }},
	{"DATA_INICIO", func(a Activity) any { return a.StartAt }},
	{"DATA_FIM", func(a Activity) any { return a.EndAt }},
	{"CODUSUARIO", func(a Activity) any { return a.UserID.String() }},
	{"NOME_USUARIO", func(a Activity) any { return a.UserName }},
	{"ORDEM", func(a Activity) any { return a.Order }},
	{"STATUS", func(a Activity) any { return string(a.Status) }},
}

// ExportActivities renders the activity list as an xlsx workbook and returns it
// with a suggested filename.
func (s *ActivityServiceImpl) ExportActivities(ctx context.Context, leadID string, active string) ([]byte, string, error) {
	activities := s.ListActivities(ctx, leadID, active)

	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Atividades"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, "", err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, "", err
	}

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"#E0E0E0"}, Pattern: 1},
	})

	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, col.Header)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for rowIdx, a := range activities {
		for colIdx, col := range exportColumns {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			f.SetCellValue(sheetName, cell, col.Value(a))
		}
	}

	for i := range exportColumns {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheetName, col, col, 18)
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", err
	}

	filename := "atividades.xlsx"
	if _, err := strconv.ParseUint(leadID, 10, 64); err == nil {
		filename = fmt.Sprintf("atividades-lead-%s.xlsx", leadID)
	}
	return buffer.Bytes(), filename, nil
}
