package models

import (
	"strings"

	"gorm.io/gorm"
)

// ReportType identifies the computation a saved report was generated from.
type ReportType string

const (
	ReportTypeBudgetVsActual ReportType = "budget-vs-actual"
	ReportTypeOverview       ReportType = "overview"
)

// Report is a rendered report persisted for later reference.
type Report struct {
	DefaultModel
	Name    string     `gorm:"not null"`
	Type    ReportType `gorm:"not null"`
	Content string     `gorm:"not null"`
}

func (r *Report) BeforeSave(_ *gorm.DB) error {
	r.Name = strings.TrimSpace(r.Name)
	return nil
}
