package models

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/carlinegarage/invoicing/internal/idgen"
)

// BillNumberPrefix is the fixed prefix of generated bill numbers.
const BillNumberPrefix = "CLG"

// Customer is referenced by the invoice, never owned by it: the invoice
// keeps an id plus snapshot fields so later customer edits do not rewrite
// already-issued documents.
type Customer struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Contact string `json:"contact"`
	Avatar  string `json:"avatar,omitempty"`
	Address string `json:"address,omitempty"`
}

// VehicleInfo carries the optional vehicle fields shown above the line
// items table on garage invoices.
type VehicleInfo struct {
	Number       string `json:"number,omitempty"`
	Type         string `json:"type,omitempty"`
	Model        string `json:"model,omitempty"`
	MeterReading string `json:"meterReading,omitempty"`
}

// LineItem is one billed row. Amount tracks UnitRate with quantity fixed
// at 1 unless a caller sets Quantity explicitly.
type LineItem struct {
	ID          string  `json:"id"`
	Description string  `json:"description"`
	UnitRate    float64 `json:"unitRate"`
	Quantity    int     `json:"quantity"`
	Amount      float64 `json:"amount"`
}

// InvoiceRecord is the value object describing one invoice. Dates are
// RFC3339 strings on the wire and time.Time in memory. Total is derived:
// it equals the sum of line item amounts after every mutating operation.
type InvoiceRecord struct {
	BillNumber string      `json:"billNumber"`
	IssueDate  time.Time   `json:"issueDate"`
	DueDate    *time.Time  `json:"dueDate,omitempty"`
	Customer   *Customer   `json:"customer"`
	Subject    string      `json:"subject,omitempty"`
	Vehicle    VehicleInfo `json:"vehicle"`
	LineItems  []LineItem  `json:"lineItems"`
	Total      float64     `json:"total"`
	IsDraft    bool        `json:"isDraft"`
}

// NewBillNumber generates a bill number of the form
// CLG-<last 6 digits of unix millis>-<3 random digits>. Numbers are never
// reused: once assigned to an invoice they stay with it.
func NewBillNumber() string {
	ts := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(ts) > 6 {
		ts = ts[len(ts)-6:]
	}
	return fmt.Sprintf("%s-%s-%03d", BillNumberPrefix, ts, rand.Intn(1000))
}

// NewInvoice returns an empty draft with a fresh bill number.
func NewInvoice() InvoiceRecord {
	return InvoiceRecord{
		BillNumber: NewBillNumber(),
		IssueDate:  time.Now(),
		LineItems:  []LineItem{},
		IsDraft:    true,
	}
}

// CalculateTotal sums line item amounts.
func CalculateTotal(items []LineItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Amount
	}
	return total
}

// AddLineItem appends an item (display order is insertion order) and
// recomputes the total.
func (inv *InvoiceRecord) AddLineItem(description string, unitRate float64) LineItem {
	item := LineItem{
		ID:          idgen.Next(),
		Description: description,
		UnitRate:    unitRate,
		Quantity:    1,
		Amount:      unitRate,
	}
	inv.LineItems = append(inv.LineItems, item)
	inv.Total = CalculateTotal(inv.LineItems)
	return item
}

// UpdateLineItem edits an item in place, keeping its position. Returns
// false when no item has the given id.
func (inv *InvoiceRecord) UpdateLineItem(id, description string, unitRate float64) bool {
	for i := range inv.LineItems {
		if inv.LineItems[i].ID != id {
			continue
		}
		inv.LineItems[i].Description = description
		inv.LineItems[i].UnitRate = unitRate
		if inv.LineItems[i].Quantity <= 0 {
			inv.LineItems[i].Quantity = 1
		}
		inv.LineItems[i].Amount = unitRate * float64(inv.LineItems[i].Quantity)
		inv.Total = CalculateTotal(inv.LineItems)
		return true
	}
	return false
}

// RemoveLineItem deletes an item, preserving the order of the rest.
// Returns false when no item has the given id.
func (inv *InvoiceRecord) RemoveLineItem(id string) bool {
	for i := range inv.LineItems {
		if inv.LineItems[i].ID != id {
			continue
		}
		inv.LineItems = append(inv.LineItems[:i], inv.LineItems[i+1:]...)
		inv.Total = CalculateTotal(inv.LineItems)
		return true
	}
	return false
}

// Normalize fills missing item ids and quantities and recomputes amounts
// and the total. Called on records arriving from outside (e.g. a draft
// posted by the host UI) so the total invariant holds before persisting.
func (inv *InvoiceRecord) Normalize() {
	for i := range inv.LineItems {
		if inv.LineItems[i].ID == "" {
			inv.LineItems[i].ID = idgen.Next()
		}
		if inv.LineItems[i].Quantity <= 0 {
			inv.LineItems[i].Quantity = 1
		}
		inv.LineItems[i].Amount = inv.LineItems[i].UnitRate * float64(inv.LineItems[i].Quantity)
	}
	inv.Total = CalculateTotal(inv.LineItems)
}

// SampleInvoice is the placeholder used by the template preview so
// customization can be judged against realistic data.
func SampleInvoice() InvoiceRecord {
	inv := NewInvoice()
	inv.Subject = "Vehicle Service"
	inv.Customer = &Customer{ID: "sample", Name: "Ahmed Khan", Contact: "0303 1234567"}
	inv.AddLineItem("Oil Change", 45.00)
	inv.AddLineItem("Air Filter Replacement", 25.00)
	inv.AddLineItem("Brake Inspection", 60.00)
	return inv
}
