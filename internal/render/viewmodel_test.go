package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/services"
)

func TestExportFileName(t *testing.T) {
	assert.Equal(t, "Car_Line_Garage_Invoice_CLG-123456-001.pdf",
		ExportFileName("Car Line Garage", "CLG-123456-001"))
	assert.Equal(t, "A_B_Invoice_X.pdf", ExportFileName("A & B!!", "X"))
	assert.Equal(t, "Invoice_Invoice_X.pdf", ExportFileName("??", "X"))
}

func TestPageSizeFor(t *testing.T) {
	assert.Equal(t, "a5", PageSizeFor(0))
	assert.Equal(t, "a5", PageSizeFor(10))
	assert.Equal(t, "a4", PageSizeFor(11))
}

func TestBuildViewModel(t *testing.T) {
	s := models.DefaultSettings()
	s.DateFormat = "yyyy-MM-dd"
	s.AlternateRowColors = true
	s.IncludeAmountInWords = true

	inv := models.NewInvoice()
	inv.BillNumber = "CLG-000001-000"
	inv.IssueDate = time.Date(2026, time.January, 15, 0, 0, 0, 0, time.UTC)
	due := inv.IssueDate.AddDate(0, 0, 14)
	inv.DueDate = &due
	inv.AddLineItem("Oil Change", 50)
	inv.AddLineItem("Brake Pads", 50)

	vm := BuildViewModel(inv, s, services.NewFinanceService())

	assert.Equal(t, "2026-01-15", vm.IssueDateText)
	assert.Equal(t, "2026-01-29", vm.DueDateText)
	assert.Equal(t, "Car_Line_Garage_Invoice_CLG-000001-000.pdf", vm.FileName)
	assert.Equal(t, "a5", vm.PageSize)

	// financials flow through: 100 - 20 + 10
	assert.InDelta(t, 100, vm.Financials.Subtotal, 1e-9)
	assert.InDelta(t, 90, vm.Financials.AmountDue, 1e-9)
	assert.NotEmpty(t, vm.Financials.AmountInWords)

	assert.Equal(t, []string{"", s.AccentColor + "10"}, vm.RowFills)
}

func TestBuildViewModelHidesDatesPerToggles(t *testing.T) {
	s := models.DefaultSettings()
	s.ShowInvoiceDate = false
	s.ShowDueDate = false

	inv := models.NewInvoice()
	due := time.Now()
	inv.DueDate = &due

	vm := BuildViewModel(inv, s, services.NewFinanceService())
	assert.Empty(t, vm.IssueDateText)
	assert.Empty(t, vm.DueDateText)
}
