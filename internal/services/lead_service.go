package services

import (
	"github.com/justsurfingit/Agentic-Lead-Gen/internal/models"
	"gorm.io/gorm"
)

type LeadService struct {
	DB *gorm.DB
}

func NewLeadService(db *gorm.DB) *LeadService {
	return &LeadService{
		DB: db,
	}
}

// StoreLeads inserts every lead inside one transaction. If any single
// insert fails the whole batch is rolled back and nothing is persisted.
func (s *LeadService) StoreLeads(leads []models.Lead) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for i := range leads {
			if err := tx.Create(&leads[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
