package templates

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlinegarage/invoicing/internal/models"
)

func TestApplyKeepsFieldsThePresetDoesNotDefine(t *testing.T) {
	base := models.DefaultSettings()
	base.BusinessName = "Acme Repairs"
	base.ContactInfo = "acme@example.com"
	base.Notes = "hand wash only"

	p := ByID("modern")
	require.NotNil(t, p)

	got := Apply(base, *p)

	// modern defines no branding fields; customization survives.
	assert.Equal(t, "Acme Repairs", got.BusinessName)
	assert.Equal(t, "acme@example.com", got.ContactInfo)
	assert.Equal(t, "hand wash only", got.Notes)

	// fields the preset defines overwrite, including layout enums.
	assert.Equal(t, "#1976d2", got.HeaderColor)
	assert.Equal(t, models.HeaderTopBorder, got.HeaderStyle)
	assert.Equal(t, models.CornerRounded, got.CornerStyle)
	assert.False(t, got.ShowLines)
	assert.Equal(t, "modern", got.TemplateID)
}

func TestApplyExplicitFalseOverwrites(t *testing.T) {
	base := models.DefaultSettings()
	base.ShowLogo = true
	base.ShowDiscount = true

	p := ByID("minimalist")
	require.NotNil(t, p)

	got := Apply(base, *p)
	assert.False(t, got.ShowLogo, "preset sets showLogo=false explicitly")
	assert.False(t, got.ShowDiscount)
	assert.True(t, got.ShowTax)
}

func TestApplySequenceResetsExplicitFields(t *testing.T) {
	// switching presets must not leak one preset's watermark, footer or
	// border into the next: each preset states those fields explicitly.
	base := models.DefaultSettings()

	carLine := ByID("car-line")
	require.NotNil(t, carLine)
	withWatermark := Apply(base, *carLine)
	require.True(t, withWatermark.IncludeWatermark)
	require.Equal(t, "Car Line Garage", withWatermark.WatermarkText)

	modern := ByID("modern")
	require.NotNil(t, modern)
	got := Apply(withWatermark, *modern)
	assert.False(t, got.IncludeWatermark)
	assert.Empty(t, got.WatermarkText)
	assert.False(t, got.IncludeFooterText)
	assert.Empty(t, got.FooterText)

	elegant := ByID("elegant")
	require.NotNil(t, elegant)
	creative := ByID("creative")
	require.NotNil(t, creative)
	got = Apply(Apply(base, *elegant), *creative)
	assert.Equal(t, models.BorderNone, got.BorderStyle)

	tealModern := ByID("teal-modern")
	require.NotNil(t, tealModern)
	got = Apply(Apply(base, *tealModern), *elegant)
	assert.Equal(t, models.BackgroundSolid, got.BackgroundStyle)
	assert.Equal(t, "#ffffff", got.BackgroundValue)
	assert.False(t, got.IncludeFooterText)
	assert.Empty(t, got.FooterText)
}

func TestApplyDoesNotMutateBase(t *testing.T) {
	base := models.DefaultSettings()
	p := ByID("creative")
	require.NotNil(t, p)

	_ = Apply(base, *p)
	assert.Equal(t, models.DefaultSettings(), base)
}

func TestByIDUnknownReturnsNil(t *testing.T) {
	assert.Nil(t, ByID("no-such-preset"))
	assert.Nil(t, ByID(""))
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, p := range Catalog {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate preset id %q", p.ID)
		seen[p.ID] = true
	}
}
