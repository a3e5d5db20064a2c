package render

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/services"
)

// Styles aggregates every resolved style decision for one settings
// value. Handed to the renderer as a single unit so it never reads the
// raw settings enums itself.
type Styles struct {
	Header        HeaderStyleSpec        `json:"header"`
	Logo          LogoPlacement          `json:"logo"`
	InvoiceNumber InvoiceNumberPlacement `json:"invoiceNumber"`
	PageBorders   BorderSpec             `json:"pageBorders"`
	Background    BackgroundSpec         `json:"background"`
	TableHeader   TableHeaderSpec        `json:"tableHeader"`
	BorderRadius  int                    `json:"borderRadius"`
}

// ResolveStyles runs every resolver against the settings.
func ResolveStyles(s models.TemplateSettings) Styles {
	return Styles{
		Header:        ResolveHeaderStyle(s),
		Logo:          ResolveLogoPlacement(s),
		InvoiceNumber: ResolveInvoiceNumberPlacement(s),
		PageBorders:   ResolveBorders(s),
		Background:    ResolveBackground(s),
		TableHeader:   ResolveTableHeader(s),
		BorderRadius:  BorderRadius(s),
	}
}

// ViewModel is everything a renderer needs for one invoice: the raw
// invoice, the settings it was resolved under, the derived styles and
// the derived money block, plus display strings already formatted.
type ViewModel struct {
	Invoice    models.InvoiceRecord    `json:"invoice"`
	Settings   models.TemplateSettings `json:"settings"`
	Styles     Styles                  `json:"styles"`
	Financials services.Summary        `json:"financials"`

	IssueDateText string   `json:"issueDateText"`
	DueDateText   string   `json:"dueDateText,omitempty"`
	FileName      string   `json:"fileName"`
	PageSize      string   `json:"pageSize"`
	RowFills      []string `json:"rowFills"`
}

// BuildViewModel assembles the render input for one invoice.
func BuildViewModel(inv models.InvoiceRecord, s models.TemplateSettings, fin *services.FinanceService) ViewModel {
	vm := ViewModel{
		Invoice:    inv,
		Settings:   s,
		Styles:     ResolveStyles(s),
		Financials: fin.Summarize(inv, s),
		FileName:   ExportFileName(s.BusinessName, inv.BillNumber),
		PageSize:   PageSizeFor(len(inv.LineItems)),
	}
	if s.ShowInvoiceDate {
		vm.IssueDateText = FormatDate(inv.IssueDate, s.DateFormat)
	}
	if s.ShowDueDate && inv.DueDate != nil {
		vm.DueDateText = FormatDate(*inv.DueDate, s.DateFormat)
	}
	vm.RowFills = make([]string, len(inv.LineItems))
	for i := range inv.LineItems {
		vm.RowFills[i] = RowFill(s, i)
	}
	return vm
}

var fileNameUnsafe = regexp.MustCompile(`[^A-Za-z0-9]+`)

// ExportFileName builds the download name for an exported PDF:
// every run of non-alphanumeric characters in the business name becomes
// a single underscore, then "_Invoice_<billNumber>.pdf" is appended.
func ExportFileName(businessName, billNumber string) string {
	base := fileNameUnsafe.ReplaceAllString(businessName, "_")
	base = strings.Trim(base, "_")
	if base == "" {
		base = "Invoice"
	}
	return fmt.Sprintf("%s_Invoice_%s.pdf", base, billNumber)
}

// PageSizeFor picks the page size by item count: long invoices get a4,
// short ones the compact a5.
func PageSizeFor(itemCount int) string {
	if itemCount > 10 {
		return "a4"
	}
	return "a5"
}
