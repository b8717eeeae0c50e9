package productapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type ProductView struct {
	ID          string    `json:"id"`
	Code        string    `json:"code"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	StockStatus string    `json:"stock_status"`
	IsActive    bool      `json:"is_active"`
	CreatedBy   string    `json:"created_by"`
	ModifiedBy  string    `json:"modified_by,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateProduct struct {
	Code        string  `json:"code"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	IsActive    bool    `json:"is_active"`
}

func (r CreateProduct) Validate() error {
	if r.Code == "" {
		return errors.New("product code is not set")
	}
	if len(r.Code) > 50 {
		return errors.New("product code is longer than 50 characters")
	}
	if r.Name == "" {
		return errors.New("product name is not set")
	}
	if len(r.Name) > 200 {
		return errors.New("product name is longer than 200 characters")
	}
	if r.Category == "" {
		return errors.New("product category is not set")
	}
	if r.Price <= 0 {
		return errors.New("product price must be positive")
	}
	if r.Stock < 0 {
		return errors.New("product stock can not be negative")
	}
	return nil
}

type UpdateProduct struct {
	Code        *string  `json:"code"`
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Category    *string  `json:"category"`
	Price       *float64 `json:"price"`
	Stock       *int     `json:"stock"`
	IsActive    *bool    `json:"is_active"`
}

func (r UpdateProduct) Validate() error {
	if r.Code != nil && *r.Code == "" {
		return errors.New("product code can not be empty")
	}
	if r.Price != nil && *r.Price <= 0 {
		return errors.New("product price must be positive")
	}
	if r.Stock != nil && *r.Stock < 0 {
		return errors.New("product stock can not be negative")
	}
	return nil
}
