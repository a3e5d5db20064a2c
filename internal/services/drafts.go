package services

import (
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/carlinegarage/invoicing/internal/models"
)

// DraftService persists draft invoices keyed by bill number. The record
// body is the serialized invoice; dates travel as RFC3339 strings.
type DraftService struct {
	db  *gorm.DB
	log *zap.Logger
}

func NewDraftService(db *gorm.DB, log *zap.Logger) *DraftService {
	return &DraftService{db: db, log: log}
}

// SaveDraft stores the invoice under its bill number, overwriting any
// existing draft with the same number. The stored copy is always marked
// as a draft.
func (d *DraftService) SaveDraft(inv models.InvoiceRecord) error {
	if inv.BillNumber == "" {
		return errors.New("missing_bill_number")
	}
	inv.IsDraft = true
	data, err := json.Marshal(inv)
	if err != nil {
		return fmt.Errorf("encode draft: %w", err)
	}
	rec := models.DraftRecord{BillNumber: inv.BillNumber, Data: data}
	err = d.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "bill_number"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&rec).Error
	if err != nil {
		return fmt.Errorf("save draft: %w", err)
	}
	return nil
}

// ListDrafts returns all stored drafts keyed by bill number. Corrupt
// rows are logged and skipped; a storage error yields an empty map so
// the caller's listing degrades instead of failing.
func (d *DraftService) ListDrafts() map[string]models.InvoiceRecord {
	drafts := map[string]models.InvoiceRecord{}

	var recs []models.DraftRecord
	if err := d.db.Find(&recs).Error; err != nil {
		d.log.Warn("draft listing failed", zap.Error(err))
		return drafts
	}
	for _, rec := range recs {
		var inv models.InvoiceRecord
		if err := json.Unmarshal(rec.Data, &inv); err != nil {
			d.log.Warn("skipping corrupt draft",
				zap.String("bill_number", rec.BillNumber), zap.Error(err))
			continue
		}
		drafts[rec.BillNumber] = inv
	}
	return drafts
}

// GetDraft returns the draft with the given bill number, or nil when no
// such draft exists.
func (d *DraftService) GetDraft(billNumber string) (*models.InvoiceRecord, error) {
	var rec models.DraftRecord
	err := d.db.First(&rec, "bill_number = ?", billNumber).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load draft: %w", err)
	}
	var inv models.InvoiceRecord
	if err := json.Unmarshal(rec.Data, &inv); err != nil {
		return nil, fmt.Errorf("decode draft %s: %w", billNumber, err)
	}
	return &inv, nil
}

// DeleteDraft removes a draft. Deleting a missing draft is a no-op.
func (d *DraftService) DeleteDraft(billNumber string) error {
	err := d.db.Delete(&models.DraftRecord{}, "bill_number = ?", billNumber).Error
	if err != nil {
		return fmt.Errorf("delete draft: %w", err)
	}
	return nil
}
