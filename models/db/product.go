package dbmodels

import (
	productapimodels "admin-dashboard-backend/models/api/product"
)

type Product struct {
	BaseSpaceModel
	Code        string `gorm:"type:varchar(50);index"`
	Name        string `gorm:"type:varchar(200)"`
	Description string `gorm:"type:varchar(500)"`
	Category    string `gorm:"type:varchar(100)"`
	Price       float64
	Stock       int
	IsActive    bool
	CreatedBy   string `gorm:"type:varchar(150)"`
	ModifiedBy  string `gorm:"type:varchar(150)"`
}

const (
	stockLevelLow = 10
	stockLevelOut = 0
)

// StockStatus bands the current stock quantity for reporting.
func (r Product) StockStatus() string {
	switch {
	case r.Stock <= stockLevelOut:
		return "Out of stock"
	case r.Stock <= stockLevelLow:
		return "Low stock"
	default:
		return "In stock"
	}
}

func (r Product) ToModel() productapimodels.ProductView {
	return productapimodels.ProductView{
		ID:          r.ID,
		Code:        r.Code,
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		Stock:       r.Stock,
		StockStatus: r.StockStatus(),
		IsActive:    r.IsActive,
		CreatedBy:   r.CreatedBy,
		ModifiedBy:  r.ModifiedBy,
		CreatedAt:   r.CreatedAt,
	}
}
