package producthandler

import (
	"admin-dashboard-backend/db"
	productstore "admin-dashboard-backend/lib/product/store"
	productapimodels "admin-dashboard-backend/models/api/product"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
)

type Provider interface {
	CreateProduct(spaceID, createdBy string, data productapimodels.CreateProduct) (id string, err error)
	UpdateProduct(spaceID, id, modifiedBy string, data productapimodels.UpdateProduct) error
	DeleteProduct(spaceID, id string) error
	GetByID(spaceID, id string) (*productapimodels.ProductView, error)
	List(spaceID string, page, limit int) (list []productapimodels.ProductView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: productstore.NewInstance(db.DB),
	}
}

type impl struct {
	store productstore.Provider
}

func (i impl) CreateProduct(spaceID, createdBy string, data productapimodels.CreateProduct) (id string, err error) {
	existed, err := i.store.FindByCode(spaceID, data.Code)
	if err != nil {
		return "", err
	}
	if existed != nil {
		return "", errors.Errorf("product with code %v already exists", data.Code)
	}
	rec := dbmodels.Product{
		Code:        data.Code,
		Name:        data.Name,
		Description: data.Description,
		Category:    data.Category,
		Price:       data.Price,
		Stock:       data.Stock,
		IsActive:    data.IsActive,
		CreatedBy:   createdBy,
	}
	rec.SpaceID = spaceID
	return i.store.Create(rec)
}

func (i impl) UpdateProduct(spaceID, id, modifiedBy string, data productapimodels.UpdateProduct) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Errorf("product %v is not found", id)
	}
	updMap := map[string]interface{}{}
	if data.Code != nil {
		updMap["code"] = *data.Code
	}
	if data.Name != nil {
		updMap["name"] = *data.Name
	}
	if data.Description != nil {
		updMap["description"] = *data.Description
	}
	if data.Category != nil {
		updMap["category"] = *data.Category
	}
	if data.Price != nil {
		updMap["price"] = *data.Price
	}
	if data.Stock != nil {
		updMap["stock"] = *data.Stock
	}
	if data.IsActive != nil {
		updMap["is_active"] = *data.IsActive
	}
	if len(updMap) > 0 {
		updMap["modified_by"] = modifiedBy
	}
	return i.store.Update(spaceID, id, updMap)
}

func (i impl) DeleteProduct(spaceID, id string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Errorf("product %v is not found", id)
	}
	return i.store.Delete(spaceID, id)
}

func (i impl) GetByID(spaceID, id string) (*productapimodels.ProductView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, errors.Errorf("product %v is not found", id)
	}
	view := rec.ToModel()
	return &view, nil
}

func (i impl) List(spaceID string, page, limit int) ([]productapimodels.ProductView, int64, error) {
	list, rowCount, err := i.store.List(spaceID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]productapimodels.ProductView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}
