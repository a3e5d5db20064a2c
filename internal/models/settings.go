package models

// Layout enumerations. Persisted as strings so unknown values survive a
// round-trip; the resolvers in internal/render map anything unrecognized
// to their documented default branch instead of failing.

type HeaderStyle string

const (
	HeaderFullColor HeaderStyle = "full-color"
	HeaderTopBorder HeaderStyle = "top-border"
	HeaderBox       HeaderStyle = "box"
	HeaderSideColor HeaderStyle = "side-color"
	HeaderMinimal   HeaderStyle = "minimal"
)

type Position string

const (
	PositionLeft   Position = "left"
	PositionCenter Position = "center"
	PositionRight  Position = "right"
)

type InvoiceNumberPosition string

const (
	NumberTopLeft     InvoiceNumberPosition = "top-left"
	NumberTopRight    InvoiceNumberPosition = "top-right"
	NumberHeaderLeft  InvoiceNumberPosition = "header-left"
	NumberHeaderRight InvoiceNumberPosition = "header-right"
	NumberUnderHeader InvoiceNumberPosition = "under-header"
)

type BorderStyle string

const (
	BorderNone       BorderStyle = "none"
	BorderFull       BorderStyle = "full"
	BorderHeaderOnly BorderStyle = "header-only"
	BorderTableOnly  BorderStyle = "table-only"
)

type CornerStyle string

const (
	CornerSquare  CornerStyle = "square"
	CornerRounded CornerStyle = "rounded"
)

type BackgroundStyle string

const (
	BackgroundSolid    BackgroundStyle = "solid"
	BackgroundGradient BackgroundStyle = "gradient"
	BackgroundPattern  BackgroundStyle = "pattern"
)

type TableHeaderStyle string

const (
	TableHeaderMinimal  TableHeaderStyle = "minimal"
	TableHeaderFilled   TableHeaderStyle = "filled"
	TableHeaderBordered TableHeaderStyle = "bordered"
)

// CustomField is a free label/value pair shown either in the header area
// (CustomFields) or above the line items table (PreTableCustomFields).
type CustomField struct {
	ID    string `json:"id"`
	Label string `json:"label"`
	Value string `json:"value"`
}

// SettingsSchemaVersion tags persisted settings blobs. Loading an older
// blob is handled by merging it onto DefaultSettings; the tag exists so a
// future incompatible migration can dispatch on it instead of growing
// per-field checks.
const SettingsSchemaVersion = 3

// TemplateSettings is the versioned, persisted configuration describing
// every visual and content toggle of the rendered invoice. The whole
// object is always written back; there is no partial-write path.
type TemplateSettings struct {
	SchemaVersion int    `json:"schemaVersion"`
	TemplateID    string `json:"templateId"`

	// Branding
	BusinessName string `json:"businessName"`
	Tagline      string `json:"businessTagline"`
	ContactInfo  string `json:"contactInfo"`
	Address      string `json:"address"`
	LogoURL      string `json:"logoUrl"`

	// Color and typography
	HeaderColor string `json:"headerColor"`
	TextColor   string `json:"textColor"`
	AccentColor string `json:"accentColor"`
	FontFamily  string `json:"fontFamily"`

	// Layout
	HeaderStyle           HeaderStyle           `json:"headerStyle"`
	CompanyInfoPosition   Position              `json:"companyInfoPosition"`
	InvoiceNumberPosition InvoiceNumberPosition `json:"invoiceNumberPosition"`
	LogoPosition          Position              `json:"logoPosition"`
	BorderStyle           BorderStyle           `json:"borderStyle"`
	CornerStyle           CornerStyle           `json:"cornerStyle"`
	BackgroundStyle       BackgroundStyle       `json:"backgroundStyle"`
	BackgroundValue       string                `json:"backgroundValue"`
	TableHeaderStyle      TableHeaderStyle      `json:"tableHeaderStyle"`

	// Feature toggles
	ShowLogo                  bool `json:"showLogo"`
	ShowLines                 bool `json:"showLines"`
	ShowDiscount              bool `json:"showDiscount"`
	ShowTax                   bool `json:"showTax"`
	IncludeTaxFields          bool `json:"includeTaxFields"`
	AlternateRowColors        bool `json:"alternateRowColors"`
	IncludeWatermark          bool `json:"includeWatermark"`
	IncludeSignatureLine      bool `json:"includeSignatureLine"`
	IncludeAmountInWords      bool `json:"includeAmountInWords"`
	IncludeFooterText         bool `json:"includeFooterText"`
	IncludeNotes              bool `json:"includeNotes"`
	IncludeTermsAndConditions bool `json:"includeTermsAndConditions"`
	ShowMeterReading          bool `json:"showMeterReading"`
	ShowVehicleInfo           bool `json:"showVehicleInfo"`
	ShowCustomerInfo          bool `json:"showCustomerInfo"`
	ShowDueDate               bool `json:"showDueDate"`
	ShowInvoiceDate           bool `json:"showInvoiceDate"`

	// Free text gated by the toggles above
	WatermarkText      string `json:"watermarkText"`
	FooterText         string `json:"footerText"`
	Notes              string `json:"notes"`
	TermsAndConditions string `json:"termsAndConditions"`

	DateFormat string `json:"dateFormat"`

	CustomFields         []CustomField `json:"customFields"`
	PreTableCustomFields []CustomField `json:"preTableCustomFields"`
}

// DefaultSettings returns the canonical, fully populated settings object.
// Every field added in a later schema revision must get a default here:
// loading an older persisted blob merges it onto this object so nothing
// is ever left unset.
func DefaultSettings() TemplateSettings {
	return TemplateSettings{
		SchemaVersion: SettingsSchemaVersion,
		TemplateID:    "classic",

		BusinessName: "Car Line Garage",
		Tagline:      "Professional Auto Service",
		ContactInfo:  "Phone: 123-456-7890 | Email: info@carlinegarage.com",
		Address:      "123 Auto Street, Mechanic City",
		LogoURL:      "",

		HeaderColor: "#2e7d32",
		TextColor:   "#000000",
		AccentColor: "#2e7d32",
		FontFamily:  "Helvetica",

		HeaderStyle:           HeaderFullColor,
		CompanyInfoPosition:   PositionLeft,
		InvoiceNumberPosition: NumberTopRight,
		LogoPosition:          PositionLeft,
		BorderStyle:           BorderNone,
		CornerStyle:           CornerSquare,
		BackgroundStyle:       BackgroundSolid,
		BackgroundValue:       "#ffffff",
		TableHeaderStyle:      TableHeaderMinimal,

		ShowLogo:                  true,
		ShowLines:                 true,
		ShowDiscount:              true,
		ShowTax:                   true,
		IncludeTaxFields:          false,
		AlternateRowColors:        false,
		IncludeWatermark:          false,
		IncludeSignatureLine:      true,
		IncludeAmountInWords:      false,
		IncludeFooterText:         false,
		IncludeNotes:              false,
		IncludeTermsAndConditions: false,
		ShowMeterReading:          true,
		ShowVehicleInfo:           true,
		ShowCustomerInfo:          true,
		ShowDueDate:               true,
		ShowInvoiceDate:           true,

		WatermarkText:      "",
		FooterText:         "",
		Notes:              "",
		TermsAndConditions: "",

		DateFormat: "MM/dd/yyyy",

		CustomFields:         []CustomField{},
		PreTableCustomFields: []CustomField{},
	}
}
