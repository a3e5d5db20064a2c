// Package templates holds the fixed catalog of named invoice presets and
// the directional merge that applies one to the current settings.
package templates

import "github.com/carlinegarage/invoicing/internal/models"

// PresetSettings is a partial models.TemplateSettings: only non-nil
// fields take part in Apply. This keeps "preset does not care" distinct
// from "preset sets to false/empty".
type PresetSettings struct {
	BusinessName *string `json:"businessName,omitempty"`
	Tagline      *string `json:"businessTagline,omitempty"`
	ContactInfo  *string `json:"contactInfo,omitempty"`
	Address      *string `json:"address,omitempty"`
	LogoURL      *string `json:"logoUrl,omitempty"`

	HeaderColor *string `json:"headerColor,omitempty"`
	TextColor   *string `json:"textColor,omitempty"`
	AccentColor *string `json:"accentColor,omitempty"`
	FontFamily  *string `json:"fontFamily,omitempty"`

	HeaderStyle           *models.HeaderStyle           `json:"headerStyle,omitempty"`
	CompanyInfoPosition   *models.Position              `json:"companyInfoPosition,omitempty"`
	InvoiceNumberPosition *models.InvoiceNumberPosition `json:"invoiceNumberPosition,omitempty"`
	LogoPosition          *models.Position              `json:"logoPosition,omitempty"`
	BorderStyle           *models.BorderStyle           `json:"borderStyle,omitempty"`
	CornerStyle           *models.CornerStyle           `json:"cornerStyle,omitempty"`
	BackgroundStyle       *models.BackgroundStyle       `json:"backgroundStyle,omitempty"`
	BackgroundValue       *string                       `json:"backgroundValue,omitempty"`
	TableHeaderStyle      *models.TableHeaderStyle      `json:"tableHeaderStyle,omitempty"`

	ShowLogo             *bool `json:"showLogo,omitempty"`
	ShowLines            *bool `json:"showLines,omitempty"`
	ShowDiscount         *bool `json:"showDiscount,omitempty"`
	ShowTax              *bool `json:"showTax,omitempty"`
	AlternateRowColors   *bool `json:"alternateRowColors,omitempty"`
	IncludeWatermark     *bool `json:"includeWatermark,omitempty"`
	IncludeSignatureLine *bool `json:"includeSignatureLine,omitempty"`
	IncludeAmountInWords *bool `json:"includeAmountInWords,omitempty"`
	IncludeFooterText    *bool `json:"includeFooterText,omitempty"`

	WatermarkText *string `json:"watermarkText,omitempty"`
	FooterText    *string `json:"footerText,omitempty"`
	DateFormat    *string `json:"dateFormat,omitempty"`
}

// Preset is a named bundle of partial settings.
type Preset struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Settings    PresetSettings `json:"defaultSettings"`
}

// Apply merges a preset into base: every field the preset defines
// overwrites the current value, everything else is kept. The preset id is
// stamped as the active template id. base is passed by value so callers
// keep their original.
func Apply(base models.TemplateSettings, p Preset) models.TemplateSettings {
	out := base
	out.TemplateID = p.ID

	ps := p.Settings
	setStr(&out.BusinessName, ps.BusinessName)
	setStr(&out.Tagline, ps.Tagline)
	setStr(&out.ContactInfo, ps.ContactInfo)
	setStr(&out.Address, ps.Address)
	setStr(&out.LogoURL, ps.LogoURL)
	setStr(&out.HeaderColor, ps.HeaderColor)
	setStr(&out.TextColor, ps.TextColor)
	setStr(&out.AccentColor, ps.AccentColor)
	setStr(&out.FontFamily, ps.FontFamily)
	setStr(&out.BackgroundValue, ps.BackgroundValue)
	setStr(&out.WatermarkText, ps.WatermarkText)
	setStr(&out.FooterText, ps.FooterText)
	setStr(&out.DateFormat, ps.DateFormat)

	if ps.HeaderStyle != nil {
		out.HeaderStyle = *ps.HeaderStyle
	}
	if ps.CompanyInfoPosition != nil {
		out.CompanyInfoPosition = *ps.CompanyInfoPosition
	}
	if ps.InvoiceNumberPosition != nil {
		out.InvoiceNumberPosition = *ps.InvoiceNumberPosition
	}
	if ps.LogoPosition != nil {
		out.LogoPosition = *ps.LogoPosition
	}
	if ps.BorderStyle != nil {
		out.BorderStyle = *ps.BorderStyle
	}
	if ps.CornerStyle != nil {
		out.CornerStyle = *ps.CornerStyle
	}
	if ps.BackgroundStyle != nil {
		out.BackgroundStyle = *ps.BackgroundStyle
	}
	if ps.TableHeaderStyle != nil {
		out.TableHeaderStyle = *ps.TableHeaderStyle
	}

	setBool(&out.ShowLogo, ps.ShowLogo)
	setBool(&out.ShowLines, ps.ShowLines)
	setBool(&out.ShowDiscount, ps.ShowDiscount)
	setBool(&out.ShowTax, ps.ShowTax)
	setBool(&out.AlternateRowColors, ps.AlternateRowColors)
	setBool(&out.IncludeWatermark, ps.IncludeWatermark)
	setBool(&out.IncludeSignatureLine, ps.IncludeSignatureLine)
	setBool(&out.IncludeAmountInWords, ps.IncludeAmountInWords)
	setBool(&out.IncludeFooterText, ps.IncludeFooterText)

	return out
}

// ByID returns the preset with the given id, or nil when unknown.
// Selecting an unknown preset is not an error; callers decide how to
// report it.
func ByID(id string) *Preset {
	for i := range Catalog {
		if Catalog[i].ID == id {
			return &Catalog[i]
		}
	}
	return nil
}

func setStr(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}

func sp(s string) *string { return &s }
func bp(b bool) *bool     { return &b }

func hs(v models.HeaderStyle) *models.HeaderStyle                     { return &v }
func pos(v models.Position) *models.Position                          { return &v }
func np(v models.InvoiceNumberPosition) *models.InvoiceNumberPosition { return &v }
func bs(v models.BorderStyle) *models.BorderStyle                     { return &v }
func cs(v models.CornerStyle) *models.CornerStyle                     { return &v }
func bg(v models.BackgroundStyle) *models.BackgroundStyle             { return &v }

// Catalog is the fixed preset list. Order is display order in the host
// UI's template picker.
var Catalog = []Preset{
	{
		ID:          "classic",
		Name:        "Classic",
		Description: "A professional, clean template with a colored header",
		Settings: PresetSettings{
			HeaderColor:          sp("#2e7d32"),
			TextColor:            sp("#000000"),
			AccentColor:          sp("#2e7d32"),
			FontFamily:           sp("Helvetica"),
			ShowLines:            bp(true),
			CompanyInfoPosition:  pos(models.PositionLeft),
			HeaderStyle:          hs(models.HeaderFullColor),
			ShowLogo:             bp(true),
			ShowDiscount:         bp(true),
			ShowTax:              bp(true),
			DateFormat:           sp("MM/dd/yyyy"),
			BorderStyle:          bs(models.BorderNone),
			CornerStyle:          cs(models.CornerSquare),
			BackgroundStyle:      bg(models.BackgroundSolid),
			BackgroundValue:      sp("#ffffff"),
			IncludeWatermark:     bp(false),
			WatermarkText:        sp(""),
			IncludeSignatureLine: bp(true),
			IncludeAmountInWords: bp(false),
			IncludeFooterText:    bp(false),
			FooterText:           sp(""),
		},
	},
	{
		ID:          "modern",
		Name:        "Modern",
		Description: "A sleek, minimal design with accent colors",
		Settings: PresetSettings{
			HeaderColor:          sp("#1976d2"),
			TextColor:            sp("#333333"),
			AccentColor:          sp("#1976d2"),
			FontFamily:           sp("Arial"),
			ShowLines:            bp(false),
			CompanyInfoPosition:  pos(models.PositionRight),
			HeaderStyle:          hs(models.HeaderTopBorder),
			ShowLogo:             bp(true),
			ShowDiscount:         bp(true),
			ShowTax:              bp(true),
			DateFormat:           sp("dd MMM yyyy"),
			BorderStyle:          bs(models.BorderNone),
			CornerStyle:          cs(models.CornerRounded),
			BackgroundStyle:      bg(models.BackgroundSolid),
			BackgroundValue:      sp("#ffffff"),
			IncludeWatermark:     bp(false),
			WatermarkText:        sp(""),
			IncludeSignatureLine: bp(true),
			IncludeAmountInWords: bp(false),
			IncludeFooterText:    bp(false),
			FooterText:           sp(""),
		},
	},
	{
		ID:          "elegant",
		Name:        "Elegant",
		Description: "A sophisticated template with formal styling",
		Settings: PresetSettings{
			HeaderColor:          sp("#512da8"),
			TextColor:            sp("#212121"),
			AccentColor:          sp("#9575cd"),
			FontFamily:           sp("Times"),
			ShowLines:            bp(true),
			CompanyInfoPosition:  pos(models.PositionCenter),
			HeaderStyle:          hs(models.HeaderBox),
			ShowLogo:             bp(true),
			ShowDiscount:         bp(true),
			ShowTax:              bp(true),
			DateFormat:           sp("MMMM dd, yyyy"),
			BorderStyle:          bs(models.BorderFull),
			CornerStyle:          cs(models.CornerSquare),
			BackgroundStyle:      bg(models.BackgroundSolid),
			BackgroundValue:      sp("#ffffff"),
			IncludeWatermark:     bp(false),
			WatermarkText:        sp(""),
			IncludeSignatureLine: bp(true),
			IncludeAmountInWords: bp(true),
			IncludeFooterText:    bp(false),
			FooterText:           sp(""),
		},
	},
	{
		ID:          "creative",
		Name:        "Creative",
		Description: "A bold, colorful design for creative businesses",
		Settings: PresetSettings{
			HeaderColor:          sp("#ff4081"),
			TextColor:            sp("#424242"),
			AccentColor:          sp("#ff4081"),
			FontFamily:           sp("Tahoma"),
			ShowLines:            bp(false),
			CompanyInfoPosition:  pos(models.PositionLeft),
			HeaderStyle:          hs(models.HeaderSideColor),
			ShowLogo:             bp(true),
			ShowDiscount:         bp(true),
			ShowTax:              bp(true),
			DateFormat:           sp("dd/MM/yyyy"),
			BorderStyle:          bs(models.BorderNone),
			CornerStyle:          cs(models.CornerRounded),
			BackgroundStyle:      bg(models.BackgroundGradient),
			BackgroundValue:      sp("linear-gradient(135deg, #f5f7fa 0%, #c3cfe2 100%)"),
			IncludeWatermark:     bp(false),
			WatermarkText:        sp(""),
			IncludeSignatureLine: bp(true),
			IncludeAmountInWords: bp(false),
			IncludeFooterText:    bp(false),
			FooterText:           sp(""),
		},
	},
	{
		ID:          "minimalist",
		Name:        "Minimalist",
		Description: "A clean, simple design with minimal elements",
		Settings: PresetSettings{
			HeaderColor:          sp("#607d8b"),
			TextColor:            sp("#37474f"),
			AccentColor:          sp("#607d8b"),
			FontFamily:           sp("Roboto"),
			ShowLines:            bp(false),
			CompanyInfoPosition:  pos(models.PositionRight),
			HeaderStyle:          hs(models.HeaderMinimal),
			ShowLogo:             bp(false),
			ShowDiscount:         bp(false),
			ShowTax:              bp(true),
			DateFormat:           sp("yyyy-MM-dd"),
			BorderStyle:          bs(models.BorderNone),
			CornerStyle:          cs(models.CornerSquare),
			BackgroundStyle:      bg(models.BackgroundSolid),
			BackgroundValue:      sp("#ffffff"),
			IncludeWatermark:     bp(false),
			WatermarkText:        sp(""),
			IncludeSignatureLine: bp(true),
			IncludeAmountInWords: bp(false),
			IncludeFooterText:    bp(false),
			FooterText:           sp(""),
		},
	},
	{
		ID:          "car-line",
		Name:        "Car Line",
		Description: "Classic auto service invoice with detailed header",
		Settings: PresetSettings{
			BusinessName:          sp("Car Line Garage"),
			Tagline:               sp("Professional Auto Service"),
			HeaderColor:           sp("#000000"),
			TextColor:             sp("#000000"),
			AccentColor:           sp("#333333"),
			FontFamily:            sp("Arial"),
			ShowLines:             bp(true),
			CompanyInfoPosition:   pos(models.PositionCenter),
			HeaderStyle:           hs(models.HeaderMinimal),
			InvoiceNumberPosition: np(models.NumberTopRight),
			LogoPosition:          pos(models.PositionLeft),
			ShowLogo:              bp(true),
			ShowDiscount:          bp(false),
			ShowTax:               bp(false),
			DateFormat:            sp("MM/dd/yyyy"),
			BorderStyle:           bs(models.BorderFull),
			CornerStyle:           cs(models.CornerSquare),
			BackgroundStyle:       bg(models.BackgroundSolid),
			BackgroundValue:       sp("#ffffff"),
			IncludeWatermark:      bp(true),
			WatermarkText:         sp("Car Line Garage"),
			IncludeSignatureLine:  bp(true),
			IncludeAmountInWords:  bp(false),
			IncludeFooterText:     bp(false),
			FooterText:            sp(""),
		},
	},
	{
		ID:          "teal-modern",
		Name:        "Teal Modern",
		Description: "Vibrant teal header with clean layout",
		Settings: PresetSettings{
			HeaderColor:           sp("#009688"),
			TextColor:             sp("#ffffff"),
			AccentColor:           sp("#009688"),
			FontFamily:            sp("Roboto"),
			ShowLines:             bp(true),
			CompanyInfoPosition:   pos(models.PositionCenter),
			HeaderStyle:           hs(models.HeaderFullColor),
			InvoiceNumberPosition: np(models.NumberUnderHeader),
			ShowLogo:              bp(true),
			ShowDiscount:          bp(false),
			ShowTax:               bp(false),
			DateFormat:            sp("dd/MM/yyyy"),
			BorderStyle:           bs(models.BorderNone),
			CornerStyle:           cs(models.CornerRounded),
			BackgroundStyle:       bg(models.BackgroundSolid),
			BackgroundValue:       sp("#e0f2f1"),
			IncludeWatermark:      bp(false),
			WatermarkText:         sp(""),
			IncludeSignatureLine:  bp(true),
			IncludeAmountInWords:  bp(true),
			IncludeFooterText:     bp(true),
			FooterText:            sp("Thank you for your business!"),
		},
	},
	{
		ID:          "bamboo",
		Name:        "Bamboo",
		Description: "Clean design with colored text and simple borders",
		Settings: PresetSettings{
			HeaderColor:           sp("#00796b"),
			TextColor:             sp("#00796b"),
			AccentColor:           sp("#00796b"),
			FontFamily:            sp("Times"),
			ShowLines:             bp(true),
			CompanyInfoPosition:   pos(models.PositionCenter),
			HeaderStyle:           hs(models.HeaderMinimal),
			InvoiceNumberPosition: np(models.NumberUnderHeader),
			ShowLogo:              bp(false),
			ShowDiscount:          bp(true),
			ShowTax:               bp(true),
			DateFormat:            sp("dd/MM/yyyy"),
			BorderStyle:           bs(models.BorderFull),
			CornerStyle:           cs(models.CornerSquare),
			BackgroundStyle:       bg(models.BackgroundSolid),
			BackgroundValue:       sp("#ffffff"),
			IncludeWatermark:      bp(false),
			WatermarkText:         sp(""),
			IncludeSignatureLine:  bp(true),
			IncludeAmountInWords:  bp(true),
			IncludeFooterText:     bp(false),
			FooterText:            sp(""),
		},
	},
	{
		ID:          "yellow-stripe",
		Name:        "Yellow Stripe",
		Description: "Modern design with diagonal yellow stripes",
		Settings: PresetSettings{
			HeaderColor:           sp("#ffeb3b"),
			TextColor:             sp("#000000"),
			AccentColor:           sp("#fdd835"),
			FontFamily:            sp("Arial"),
			ShowLines:             bp(true),
			CompanyInfoPosition:   pos(models.PositionLeft),
			HeaderStyle:           hs(models.HeaderSideColor),
			InvoiceNumberPosition: np(models.NumberTopRight),
			ShowLogo:              bp(false),
			ShowDiscount:          bp(true),
			ShowTax:               bp(true),
			DateFormat:            sp("dd/MM/yyyy"),
			BorderStyle:           bs(models.BorderNone),
			CornerStyle:           cs(models.CornerSquare),
			BackgroundStyle:       bg(models.BackgroundPattern),
			BackgroundValue:       sp("diagonal-stripes"),
			IncludeWatermark:      bp(false),
			WatermarkText:         sp(""),
			IncludeSignatureLine:  bp(true),
			IncludeAmountInWords:  bp(true),
			IncludeFooterText:     bp(true),
			FooterText:            sp("Terms & Conditions Apply"),
		},
	},
}
