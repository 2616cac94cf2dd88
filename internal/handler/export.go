package handler

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"bank-ledger/internal/models"
	"bank-ledger/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

var statementHeaders = []string{"Date", "Type", "Status", "From", "To", "Amount", "Reversed Ref"}

func statementRow(t *models.Transaction) []string {
	ref := ""
	if t.ReversedTransactionID != nil {
		ref = *t.ReversedTransactionID
	}
	return []string{
		t.CreatedAt.Format("2006-01-02 15:04:05"),
		t.Type,
		t.Status,
		t.FromAccountID,
		t.ToAccountID,
		util.FormatCents(t.AmountCent),
		ref,
	}
}

// ExportCSV streams the current user's statement as CSV.
func (h *TransactionHandler) ExportCSV(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	_, txns, ok := h.statement(c, user)
	if !ok {
		return
	}

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s.csv\"",
		time.Now().Format("20060102")))

	writer := csv.NewWriter(c.Writer)
	defer writer.Flush()

	writer.Write(statementHeaders)
	for i := range txns {
		writer.Write(statementRow(&txns[i]))
	}
}

// ExportXLSX renders the current user's statement as a spreadsheet.
func (h *TransactionHandler) ExportXLSX(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		return
	}
	_, txns, ok := h.statement(c, user)
	if !ok {
		return
	}

	f := excelize.NewFile()
	sheetName := "Statement"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "create sheet failed")
		return
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for i, head := range statementHeaders {
		cell := fmt.Sprintf("%c1", 'A'+i)
		f.SetCellValue(sheetName, cell, head)
	}
	for idx := range txns {
		row := idx + 2
		for col, val := range statementRow(&txns[idx]) {
			cell := fmt.Sprintf("%c%d", 'A'+col, row)
			f.SetCellValue(sheetName, cell, val)
		}
	}

	f.SetColWidth(sheetName, "A", "A", 20)
	f.SetColWidth(sheetName, "D", "E", 38)
	f.SetColWidth(sheetName, "G", "G", 38)

	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"statement_%s.xlsx\"",
		time.Now().Format("20060102")))

	if err := f.Write(c.Writer); err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "write spreadsheet failed")
	}
}
