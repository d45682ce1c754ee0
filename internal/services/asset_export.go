package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"facilities-console/internal/entities"
)

const (
	assetSheet       = "Activos"
	environmentSheet = "Ambientes"
)

var assetHeaders = []interface{}{"ID", "NIA", "Nombre", "Descripción", "Código ambiente", "Ambiente"}

var environmentHeaders = []interface{}{"ID", "Código", "Nombre"}

func assetToRow(a entities.Asset) []interface{} {
	return []interface{}{a.ID, a.NIA, a.Name, a.Description, a.EnvironmentCode, a.EnvironmentName}
}

// BuildAssetWorkbook собирает книгу: лист активов и справочный лист ambientes.
func BuildAssetWorkbook(assets []entities.Asset, environments []entities.Environment) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", assetSheet); err != nil {
		return nil, err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, err
	}

	if err := f.SetSheetRow(assetSheet, "A1", &assetHeaders); err != nil {
		return nil, err
	}
	_ = f.SetCellStyle(assetSheet, "A1", "F1", bold)
	for i, a := range assets {
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		row := assetToRow(a)
		if err := f.SetSheetRow(assetSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("строка %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(assetSheet, "B", "B", 16)
	_ = f.SetColWidth(assetSheet, "C", "D", 40)
	_ = f.SetColWidth(assetSheet, "F", "F", 30)

	if len(environments) > 0 {
		if _, err := f.NewSheet(environmentSheet); err != nil {
			return nil, err
		}
		_ = f.SetSheetRow(environmentSheet, "A1", &environmentHeaders)
		_ = f.SetCellStyle(environmentSheet, "A1", "C1", bold)
		for i, env := range environments {
			cell, _ := excelize.CoordinatesToCellName(1, i+2)
			row := []interface{}{env.ID, env.Code, env.Name}
			_ = f.SetSheetRow(environmentSheet, cell, &row)
		}
		_ = f.SetColWidth(environmentSheet, "C", "C", 30)
	}
	return f, nil
}
