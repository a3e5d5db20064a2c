// Package render turns persisted template settings into concrete,
// renderer-agnostic style decisions. Every resolver is a pure function of
// the settings value; unknown enum values always fall through to the
// documented default branch rather than failing.
package render

import "github.com/carlinegarage/invoicing/internal/models"

// Edge describes one border edge: width in points plus color. A zero
// width means no visible edge.
type Edge struct {
	Width int    `json:"width"`
	Color string `json:"color,omitempty"`
}

// Borders groups the four edges of a box.
type Borders struct {
	Top    Edge `json:"top"`
	Right  Edge `json:"right"`
	Bottom Edge `json:"bottom"`
	Left   Edge `json:"left"`
}

// HeaderStyleSpec is the resolved look of the header block.
type HeaderStyleSpec struct {
	BackgroundColor string  `json:"backgroundColor,omitempty"`
	TextColor       string  `json:"textColor"`
	Padding         int     `json:"padding"`
	BorderRadius    int     `json:"borderRadius"`
	Borders         Borders `json:"borders"`
}

// ResolveHeaderStyle maps the header style enum onto concrete colors,
// borders and spacing. Minimal is the default branch: any unrecognized
// value renders as minimal.
func ResolveHeaderStyle(s models.TemplateSettings) HeaderStyleSpec {
	switch s.HeaderStyle {
	case models.HeaderFullColor:
		spec := HeaderStyleSpec{
			BackgroundColor: s.HeaderColor,
			TextColor:       s.TextColor,
			Padding:         20,
		}
		if s.CornerStyle == models.CornerRounded {
			spec.BorderRadius = 8
		}
		return spec
	case models.HeaderTopBorder:
		return HeaderStyleSpec{
			TextColor: s.AccentColor,
			Padding:   16,
			Borders:   Borders{Top: Edge{Width: 5, Color: s.HeaderColor}},
		}
	case models.HeaderBox:
		e := Edge{Width: 2, Color: s.HeaderColor}
		return HeaderStyleSpec{
			TextColor: s.AccentColor,
			Padding:   16,
			Borders:   Borders{Top: e, Right: e, Bottom: e, Left: e},
		}
	case models.HeaderSideColor:
		return HeaderStyleSpec{
			TextColor: s.AccentColor,
			Padding:   16,
			Borders:   Borders{Left: Edge{Width: 8, Color: s.HeaderColor}},
		}
	default: // minimal
		return HeaderStyleSpec{
			TextColor: s.AccentColor,
			Padding:   12,
			Borders:   Borders{Bottom: Edge{Width: 1, Color: s.AccentColor}},
		}
	}
}

// LogoPlacement says where the logo sits relative to the company info
// block. The two never share a side.
type LogoPlacement string

const (
	LogoHidden   LogoPlacement = "hidden"
	LogoLeft     LogoPlacement = "left"
	LogoRight    LogoPlacement = "right"
	LogoCentered LogoPlacement = "centered"
)

// ResolveLogoPlacement decides the logo slot. With centered company info
// the logo stacks above it; otherwise the logo takes the side opposite
// the info block, nudged by the configured logo position when it does
// not collide. Only the showLogo toggle hides the logo; an empty logo
// URL is the renderer's problem, not a placement concern.
func ResolveLogoPlacement(s models.TemplateSettings) LogoPlacement {
	if !s.ShowLogo {
		return LogoHidden
	}
	switch s.CompanyInfoPosition {
	case models.PositionCenter:
		return LogoCentered
	case models.PositionRight:
		if s.LogoPosition == models.PositionLeft {
			return LogoRight
		}
		return LogoLeft
	default: // left
		if s.LogoPosition == models.PositionRight {
			return LogoLeft
		}
		return LogoRight
	}
}

// NumberSite is the region of the page a resolved invoice number
// occupies.
type NumberSite string

const (
	SiteAboveHeader NumberSite = "above-header"
	SiteInHeader    NumberSite = "in-header"
	SiteBelowHeader NumberSite = "below-header"
)

// InvoiceNumberPlacement is the resolved spot for the invoice number.
// Exactly one placement results from any settings value. WithDueDate is
// set only for the below-header band, which pairs the number with the
// due date line.
type InvoiceNumberPlacement struct {
	Site        NumberSite `json:"site"`
	Align       string     `json:"align"`
	WithDueDate bool       `json:"withDueDate"`
}

// ResolveInvoiceNumberPlacement maps the position enum to a placement.
// Unknown values land on top-right.
func ResolveInvoiceNumberPlacement(s models.TemplateSettings) InvoiceNumberPlacement {
	switch s.InvoiceNumberPosition {
	case models.NumberTopLeft:
		return InvoiceNumberPlacement{Site: SiteAboveHeader, Align: "left"}
	case models.NumberHeaderLeft:
		return InvoiceNumberPlacement{Site: SiteInHeader, Align: "left"}
	case models.NumberHeaderRight:
		return InvoiceNumberPlacement{Site: SiteInHeader, Align: "right"}
	case models.NumberUnderHeader:
		return InvoiceNumberPlacement{Site: SiteBelowHeader, Align: "left", WithDueDate: true}
	default: // top-right
		return InvoiceNumberPlacement{Site: SiteAboveHeader, Align: "right"}
	}
}

// BorderSpec is the resolved page frame. DelegateToTable means the page
// itself draws nothing and the table carries the visible border.
type BorderSpec struct {
	Borders         Borders `json:"borders"`
	DelegateToTable bool    `json:"delegateToTable"`
}

const frameColor = "#d1d5db"

// ResolveBorders maps the border style enum to a page frame. None is the
// default branch.
func ResolveBorders(s models.TemplateSettings) BorderSpec {
	switch s.BorderStyle {
	case models.BorderFull:
		e := Edge{Width: 1, Color: frameColor}
		return BorderSpec{Borders: Borders{Top: e, Right: e, Bottom: e, Left: e}}
	case models.BorderHeaderOnly:
		e := Edge{Width: 1, Color: frameColor}
		return BorderSpec{Borders: Borders{Top: e, Right: e, Left: e}}
	case models.BorderTableOnly:
		return BorderSpec{DelegateToTable: true}
	default: // none
		return BorderSpec{}
	}
}

// patternAssets maps the known pattern names to their bundled asset
// paths. A name outside this map renders with no background at all.
var patternAssets = map[string]string{
	"diagonal-stripes": "/patterns/diagonal-stripes.png",
	"dots":             "/patterns/dots.png",
	"grid":             "/patterns/grid.png",
	"waves":            "/patterns/waves.png",
}

// BackgroundSpec is the resolved page background.
type BackgroundSpec struct {
	Kind  string `json:"kind"` // solid, gradient, pattern, none
	Value string `json:"value,omitempty"`
}

// ResolveBackground maps the background settings to a concrete fill.
// Unknown kinds fall back to a plain white solid; a pattern name that is
// not bundled yields no background.
func ResolveBackground(s models.TemplateSettings) BackgroundSpec {
	switch s.BackgroundStyle {
	case models.BackgroundGradient:
		return BackgroundSpec{Kind: "gradient", Value: s.BackgroundValue}
	case models.BackgroundPattern:
		asset, ok := patternAssets[s.BackgroundValue]
		if !ok {
			return BackgroundSpec{Kind: "none"}
		}
		return BackgroundSpec{Kind: "pattern", Value: asset}
	case models.BackgroundSolid:
		return BackgroundSpec{Kind: "solid", Value: s.BackgroundValue}
	default:
		return BackgroundSpec{Kind: "solid", Value: "#ffffff"}
	}
}

// TableHeaderSpec is the resolved look of the line items header row.
type TableHeaderSpec struct {
	FillColor string  `json:"fillColor,omitempty"`
	TextColor string  `json:"textColor"`
	Borders   Borders `json:"borders"`
}

const tableRuleColor = "#e5e7eb"

// ResolveTableHeader maps the table header enum to its look. Filled uses
// an accent tint (accent + "20" alpha suffix) so the row reads as a band
// without overpowering the accent itself. Minimal is the default branch.
func ResolveTableHeader(s models.TemplateSettings) TableHeaderSpec {
	switch s.TableHeaderStyle {
	case models.TableHeaderFilled:
		return TableHeaderSpec{
			FillColor: s.AccentColor + "20",
			TextColor: s.AccentColor,
			Borders:   Borders{Bottom: Edge{Width: 1, Color: s.AccentColor}},
		}
	case models.TableHeaderBordered:
		return TableHeaderSpec{
			TextColor: s.AccentColor,
			Borders:   Borders{Bottom: Edge{Width: 2, Color: s.AccentColor}},
		}
	default: // minimal
		return TableHeaderSpec{
			TextColor: s.AccentColor,
			Borders:   Borders{Bottom: Edge{Width: 1, Color: tableRuleColor}},
		}
	}
}

// RowFill returns the background fill of the line item at the given
// zero-based index, or "" for no fill. Only odd rows get the alternate
// tint, and only when the toggle is on.
func RowFill(s models.TemplateSettings, index int) string {
	if !s.AlternateRowColors || index%2 == 0 {
		return ""
	}
	return s.AccentColor + "10"
}

// BorderRadius resolves the corner style to a radius in points.
func BorderRadius(s models.TemplateSettings) int {
	if s.CornerStyle == models.CornerRounded {
		return 8
	}
	return 0
}
