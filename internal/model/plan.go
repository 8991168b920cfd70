// internal/model/plan.go
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type Plan struct {
	ID           uint            `gorm:"primaryKey" json:"id"`
	Name         string          `gorm:"type:varchar(100);not null" json:"name"`
	Price        decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationDays int             `gorm:"not null" json:"duration_days"`
	IsActive     bool            `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt    time.Time       `gorm:"<-:create;autoCreateTime" json:"created_at"`
}

func (Plan) TableName() string {
	return "plans"
}

// FormattedPrice renders the price with exactly two fractional digits.
func (p *Plan) FormattedPrice() string {
	return p.Price.StringFixed(2)
}
