package models

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBillNumberFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^CLG-\d{1,6}-\d{3}$`)
	for i := 0; i < 20; i++ {
		n := NewBillNumber()
		assert.Regexp(t, pattern, n)
	}
}

func TestTotalTracksLineItemMutations(t *testing.T) {
	inv := NewInvoice()
	assert.Zero(t, inv.Total)

	a := inv.AddLineItem("Oil Change", 45)
	b := inv.AddLineItem("Air Filter", 25)
	assert.InDelta(t, 70, inv.Total, 1e-9)

	ok := inv.UpdateLineItem(a.ID, "Oil Change Premium", 55)
	require.True(t, ok)
	assert.InDelta(t, 80, inv.Total, 1e-9)

	ok = inv.RemoveLineItem(b.ID)
	require.True(t, ok)
	assert.InDelta(t, 55, inv.Total, 1e-9)

	ok = inv.RemoveLineItem(a.ID)
	require.True(t, ok)
	assert.Zero(t, inv.Total)
}

func TestUpdateAndRemoveUnknownItem(t *testing.T) {
	inv := NewInvoice()
	inv.AddLineItem("Oil Change", 45)

	assert.False(t, inv.UpdateLineItem("nope", "x", 1))
	assert.False(t, inv.RemoveLineItem("nope"))
	assert.InDelta(t, 45, inv.Total, 1e-9)
}

func TestLineItemOrderIsPreserved(t *testing.T) {
	inv := NewInvoice()
	first := inv.AddLineItem("first", 1)
	inv.AddLineItem("second", 2)
	third := inv.AddLineItem("third", 3)

	require.True(t, inv.UpdateLineItem(third.ID, "third updated", 3))
	require.True(t, inv.RemoveLineItem(first.ID))

	require.Len(t, inv.LineItems, 2)
	assert.Equal(t, "second", inv.LineItems[0].Description)
	assert.Equal(t, "third updated", inv.LineItems[1].Description)
}

func TestNormalizeFillsIDsQuantitiesAndAmounts(t *testing.T) {
	inv := InvoiceRecord{
		BillNumber: "CLG-123456-001",
		LineItems: []LineItem{
			{Description: "Oil Change", UnitRate: 45},
			{ID: "keep", Description: "Brakes", UnitRate: 30, Quantity: 2},
		},
	}
	inv.Normalize()

	assert.NotEmpty(t, inv.LineItems[0].ID)
	assert.Equal(t, 1, inv.LineItems[0].Quantity)
	assert.InDelta(t, 45, inv.LineItems[0].Amount, 1e-9)

	assert.Equal(t, "keep", inv.LineItems[1].ID)
	assert.InDelta(t, 60, inv.LineItems[1].Amount, 1e-9)

	assert.InDelta(t, 105, inv.Total, 1e-9)
}

func TestSampleInvoice(t *testing.T) {
	inv := SampleInvoice()
	require.Len(t, inv.LineItems, 3)
	assert.InDelta(t, 130, inv.Total, 1e-9)
	assert.Equal(t, "Ahmed Khan", inv.Customer.Name)
	assert.True(t, inv.IsDraft)
}
