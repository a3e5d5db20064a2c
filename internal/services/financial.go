package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/carlinegarage/invoicing/internal/models"
)

// FinanceService derives the money block of an invoice from its line
// items. Rates are fields rather than constants so a future per-invoice
// override has a single place to land, but today every instance carries
// the fixed 20% discount and 10% tax.
type FinanceService struct {
	DiscountRate float64
	TaxRate      float64
}

func NewFinanceService() *FinanceService {
	return &FinanceService{DiscountRate: 0.20, TaxRate: 0.10}
}

// TaxLine is one labelled tax row in the totals block.
type TaxLine struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Summary is the fully derived financial block.
type Summary struct {
	Subtotal       float64   `json:"subtotal"`
	DiscountAmount float64   `json:"discountAmount"`
	TaxAmount      float64   `json:"taxAmount"`
	TaxLines       []TaxLine `json:"taxLines,omitempty"`
	AmountDue      float64   `json:"amountDue"`
	AmountInWords  string    `json:"amountInWords,omitempty"`
}

// Summarize derives the totals for an invoice under the given settings.
// Tax is always computed on the original subtotal, never on the
// discounted amount, so toggling the discount does not change the tax.
// The discount and tax rows only exist when their toggles are on; the
// amount due always reflects whatever rows are shown.
func (f *FinanceService) Summarize(inv models.InvoiceRecord, s models.TemplateSettings) Summary {
	subtotal := models.CalculateTotal(inv.LineItems)

	var discount, tax float64
	if s.ShowDiscount {
		discount = subtotal * f.DiscountRate
	}
	if s.ShowTax {
		tax = subtotal * f.TaxRate
	}

	sum := Summary{
		Subtotal:       subtotal,
		DiscountAmount: discount,
		TaxAmount:      tax,
		AmountDue:      subtotal - discount + tax,
	}

	if s.ShowTax && s.IncludeTaxFields {
		// the detailed breakdown shows two 9% lines instead of the
		// single 10% row; the total tax charged stays the 10% figure.
		half := subtotal * f.TaxRate * 0.9
		sum.TaxLines = []TaxLine{
			{Label: "CGST (9%)", Amount: half},
			{Label: "SGST (9%)", Amount: half},
		}
	}

	if s.IncludeAmountInWords {
		sum.AmountInWords = AmountInWords(sum.AmountDue)
	}
	return sum
}

var onesWords = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight",
	"Nine", "Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen",
	"Sixteen", "Seventeen", "Eighteen", "Nineteen",
}

var tensWords = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy",
	"Eighty", "Ninety",
}

func threeDigitsToWords(n int) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, onesWords[n/100]+" Hundred")
		n %= 100
	}
	if n >= 20 {
		w := tensWords[n/10]
		if n%10 != 0 {
			w += " " + onesWords[n%10]
		}
		parts = append(parts, w)
	} else if n > 0 {
		parts = append(parts, onesWords[n])
	}
	return strings.Join(parts, " ")
}

var scaleWords = []string{"", " Thousand", " Million", " Billion"}

// AmountInWords spells an amount in English words with the cents as a
// NN/100 fraction, e.g. 117.50 -> "One Hundred Seventeen and 50/100 USD
// Only". Negative amounts are spelled as their absolute value.
func AmountInWords(amount float64) string {
	// round once at cent precision so the whole part and the fraction
	// agree (1.995 is Two, not One)
	total := int(math.Round(math.Abs(amount) * 100))
	whole, cents := total/100, total%100

	words := "Zero"
	if whole > 0 {
		var parts []string
		for i := 0; whole > 0 && i < len(scaleWords); i++ {
			if chunk := whole % 1000; chunk > 0 {
				parts = append([]string{threeDigitsToWords(chunk) + scaleWords[i]}, parts...)
			}
			whole /= 1000
		}
		words = strings.Join(parts, " ")
	}
	return fmt.Sprintf("%s and %02d/100 USD Only", words, cents)
}
