package handler

import (
	"fmt"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/internal/usecases/reporting"
	"github.com/vfg2006/rh-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/rh-dashboard-api/pkg/log"
	"github.com/xuri/excelize/v2"
)

// ExportReport serve a visão tabular do relatório como arquivo xlsx
func ExportReport(service reporting.Reporter) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		reportType, err := domain.ParseReportType(rawType)
		if err != nil {
			logger.WithField("report", rawType).Warn("export: tipo de relatório desconhecido")
			apiErrors.WriteError(w, apiErrors.ErrUnknownReport, err.Error(), nil)
			return
		}

		filters, err := parseFilters(r)
		if err != nil {
			apiErrors.WriteError(w, apiErrors.ErrInvalidFilter, err.Error(), nil)
			return
		}

		table, err := service.Table(r.Context(), reportType, filters)
		if err != nil {
			writeReportError(w, r, reportType, err)
			return
		}

		file, err := buildWorkbook(table)
		if err != nil {
			logger.WithFields(log.Fields{
				"report": reportType,
				"error":  err.Error(),
			}).Error("export: erro ao montar a planilha")

			apiErrors.WriteError(w, apiErrors.ErrExportFailed, "Erro ao gerar a exportação", nil)
			return
		}
		defer file.Close()

		logger.WithFields(log.Fields{
			"report": reportType,
			"rows":   len(table.Rows),
		}).Info("export: planilha do relatório gerada")

		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", reportType))

		if err := file.Write(w); err != nil {
			logger.WithFields(log.Fields{
				"report": reportType,
				"error":  err.Error(),
			}).Error("export: erro ao escrever a resposta")
		}
	})
}

// buildWorkbook monta o xlsx: cabeçalho em negrito e uma linha por registro,
// na mesma ordem total da visão tabular da API.
func buildWorkbook(table *domain.ReportTable) (*excelize.File, error) {
	file := excelize.NewFile()

	sheet := string(table.Type)
	file.SetSheetName("Sheet1", sheet)

	headerStyle, err := file.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	if err != nil {
		return nil, err
	}

	header := make([]interface{}, len(table.Headers))
	for i, name := range table.Headers {
		header[i] = name
	}

	if err := file.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, err
	}

	lastColumn, err := excelize.ColumnNumberToName(len(table.Headers))
	if err != nil {
		return nil, err
	}

	if err := file.SetCellStyle(sheet, "A1", lastColumn+"1", headerStyle); err != nil {
		return nil, err
	}

	for i, row := range table.Rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}

		if err := file.SetSheetRow(sheet, cell, &cells); err != nil {
			return nil, err
		}
	}

	return file, nil
}
