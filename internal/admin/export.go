package admin

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

// export streams the resource's records as an XLSX workbook.
func (p *Panel) export(c *gin.Context) {
	res, ok := p.resource(c)
	if !ok {
		return
	}
	if res.ExportRows == nil {
		p.fail(c, http.StatusNotFound, "Export not available for this resource")
		return
	}

	records, err := res.Store.List(c.Request.Context())
	if err != nil {
		p.storeError(c, err)
		return
	}

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	for col, header := range res.ExportHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			p.exportError(c, err)
			return
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			p.exportError(c, err)
			return
		}
	}

	for rowIdx, row := range res.ExportRows(records) {
		for col, value := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, rowIdx+2)
			if err != nil {
				p.exportError(c, err)
				return
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				p.exportError(c, err)
				return
			}
		}
	}

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", res.Name))

	if err := f.Write(c.Writer); err != nil {
		p.logger.Error("Failed to stream export", "error", err, "resource", res.Name)
	}
}

func (p *Panel) exportError(c *gin.Context, err error) {
	p.logger.Error("Failed to build export", "error", err)
	p.fail(c, http.StatusInternalServerError, "Failed to build export")
}
