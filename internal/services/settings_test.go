package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carlinegarage/invoicing/internal/models"
)

func TestLoadWithoutStoredRowReturnsDefaults(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))
	assert.Equal(t, models.DefaultSettings(), svc.Load())
}

func TestLoadMergesPartialBlobOntoDefaults(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	rec := models.SettingsRecord{
		Key:  settingsKey,
		Data: []byte(`{"businessName":"Acme"}`),
	}
	require.NoError(t, svc.db.Create(&rec).Error)

	got := svc.Load()
	assert.Equal(t, "Acme", got.BusinessName)

	// every absent key keeps its default
	want := models.DefaultSettings()
	want.BusinessName = "Acme"
	assert.Equal(t, want, got)
}

func TestLoadPreservesExplicitFalseAndEmpty(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	rec := models.SettingsRecord{
		Key:  settingsKey,
		Data: []byte(`{"showLogo":false,"businessTagline":""}`),
	}
	require.NoError(t, svc.db.Create(&rec).Error)

	got := svc.Load()
	assert.False(t, got.ShowLogo, "stored false must not be replaced by the default true")
	assert.Empty(t, got.Tagline, "stored empty string must survive")
}

func TestLoadIsIdempotent(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	rec := models.SettingsRecord{
		Key:  settingsKey,
		Data: []byte(`{"businessName":"Acme","showTax":false}`),
	}
	require.NoError(t, svc.db.Create(&rec).Error)

	first := svc.Load()
	assert.Equal(t, first, svc.Load())
}

func TestLoadCorruptBlobFallsBackToLastGood(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	good := models.DefaultSettings()
	good.BusinessName = "Good State"
	_, err := svc.Save(good)
	require.NoError(t, err)
	require.Equal(t, "Good State", svc.Load().BusinessName)

	err = svc.db.Model(&models.SettingsRecord{}).
		Where("key = ?", settingsKey).
		Update("data", []byte(`{not json`)).Error
	require.NoError(t, err)

	got := svc.Load()
	assert.Equal(t, "Good State", got.BusinessName)
}

func TestLoadCorruptBlobWithoutHistoryReturnsDefaults(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	rec := models.SettingsRecord{Key: settingsKey, Data: []byte(`]]`)}
	require.NoError(t, svc.db.Create(&rec).Error)

	assert.Equal(t, models.DefaultSettings(), svc.Load())
}

func TestSaveRoundTripAndSchemaStamp(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	in := models.DefaultSettings()
	in.SchemaVersion = 1 // stale version from an old client
	in.BusinessName = "Round Trip Garage"
	in.CustomFields = nil

	saved, err := svc.Save(in)
	require.NoError(t, err)
	assert.Equal(t, models.SettingsSchemaVersion, saved.SchemaVersion)
	assert.NotNil(t, saved.CustomFields)

	got := svc.Load()
	assert.Equal(t, saved, got)
}

func TestSaveIsLastWriterWins(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	a := models.DefaultSettings()
	a.BusinessName = "First"
	_, err := svc.Save(a)
	require.NoError(t, err)

	b := models.DefaultSettings()
	b.BusinessName = "Second"
	_, err = svc.Save(b)
	require.NoError(t, err)

	assert.Equal(t, "Second", svc.Load().BusinessName)

	var count int64
	require.NoError(t, svc.db.Model(&models.SettingsRecord{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestApplyPreset(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))

	base := models.DefaultSettings()
	base.BusinessName = "Kept Name"
	_, err := svc.Save(base)
	require.NoError(t, err)

	got, err := svc.ApplyPreset("modern")
	require.NoError(t, err)
	assert.Equal(t, "modern", got.TemplateID)
	assert.Equal(t, "Kept Name", got.BusinessName)
	assert.Equal(t, models.HeaderTopBorder, got.HeaderStyle)

	// persisted, not just returned
	assert.Equal(t, got, svc.Load())
}

func TestApplyPresetUnknownID(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))
	_, err := svc.ApplyPreset("vaporwave")
	assert.ErrorIs(t, err, ErrUnknownPreset)
	assert.Equal(t, models.DefaultSettings(), svc.Load(), "failed apply must not write")
}

func TestSaveTwiceDoesNotConflict(t *testing.T) {
	svc := NewSettingsService(testDB(t), testLogger(t))
	_, err := svc.Save(models.DefaultSettings())
	require.NoError(t, err)
	_, err = svc.Save(models.DefaultSettings())
	require.NoError(t, err)
}
