package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carlinegarage/invoicing/internal/models"
	"github.com/carlinegarage/invoicing/internal/templates"
)

// settingsKey is the single row under which the settings blob lives.
const settingsKey = "pdf_template_settings"

// ErrUnknownPreset is returned by ApplyPreset for an id not in the
// catalog.
var ErrUnknownPreset = errors.New("unknown_preset")

// SettingsService loads and saves the template settings blob. Loading
// never fails from the caller's point of view: a missing row yields the
// defaults, an old blob is merged onto the defaults, and a corrupt blob
// falls back to the last successfully loaded value (or the defaults when
// there is none).
type SettingsService struct {
	db  *gorm.DB
	log *zap.Logger

	mu       sync.Mutex
	lastGood *models.TemplateSettings
}

func NewSettingsService(db *gorm.DB, log *zap.Logger) *SettingsService {
	return &SettingsService{db: db, log: log}
}

// Load returns the current settings. Merge semantics are presence based:
// a key absent from the stored blob keeps its default, while a stored
// false or empty string overwrites it. Loading is idempotent.
func (s *SettingsService) Load() models.TemplateSettings {
	var rec models.SettingsRecord
	err := s.db.First(&rec, "key = ?", settingsKey).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultSettings()
	}
	if err != nil {
		s.log.Warn("settings load failed, using fallback", zap.Error(err))
		return s.fallback()
	}

	// decode onto a scratch copy of the defaults so a partially decoded
	// corrupt blob never leaks out.
	settings := models.DefaultSettings()
	if err := json.Unmarshal(rec.Data, &settings); err != nil {
		s.log.Warn("settings blob corrupt, using fallback", zap.Error(err))
		return s.fallback()
	}
	settings.SchemaVersion = models.SettingsSchemaVersion
	s.remember(settings)
	return settings
}

// Save persists the full settings object, stamping the current schema
// version. Concurrent saves are last-writer-wins at the row level.
func (s *SettingsService) Save(settings models.TemplateSettings) (models.TemplateSettings, error) {
	settings.SchemaVersion = models.SettingsSchemaVersion
	if settings.CustomFields == nil {
		settings.CustomFields = []models.CustomField{}
	}
	if settings.PreTableCustomFields == nil {
		settings.PreTableCustomFields = []models.CustomField{}
	}

	data, err := json.Marshal(settings)
	if err != nil {
		return settings, fmt.Errorf("encode settings: %w", err)
	}
	rec := models.SettingsRecord{Key: settingsKey, Data: data}
	err = s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return settings, fmt.Errorf("save settings: %w", err)
	}
	s.remember(settings)
	return settings, nil
}

// ApplyPreset merges the named preset into the current settings and
// persists the result.
func (s *SettingsService) ApplyPreset(id string) (models.TemplateSettings, error) {
	p := templates.ByID(id)
	if p == nil {
		return models.TemplateSettings{}, ErrUnknownPreset
	}
	merged := templates.Apply(s.Load(), *p)
	return s.Save(merged)
}

func (s *SettingsService) remember(settings models.TemplateSettings) {
	s.mu.Lock()
	s.lastGood = &settings
	s.mu.Unlock()
}

func (s *SettingsService) fallback() models.TemplateSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastGood != nil {
		return *s.lastGood
	}
	return models.DefaultSettings()
}
