package mcexecutor

import (
	"admin-dashboard-backend/lib/envelope"
	productstore "admin-dashboard-backend/lib/product/store"
	"admin-dashboard-backend/models"
	dbmodels "admin-dashboard-backend/models/db"

	"github.com/pkg/errors"
)

// NewProductExecutor applies approved change requests to catalog products.
func NewProductExecutor(store productstore.Provider) Provider {
	return &productExecutor{
		store: store,
	}
}

type productExecutor struct {
	store productstore.Provider
}

func (e productExecutor) Create(spaceID string, fields envelope.FieldMap) error {
	code := fields.StringOr("code", "")
	if code == "" {
		return errors.New("product code is not set in the change payload")
	}
	existed, err := e.store.FindByCode(spaceID, code)
	if err != nil {
		return err
	}
	if existed != nil {
		// the request was already materialized on a prior attempt
		return nil
	}
	rec := dbmodels.Product{
		Code:        code,
		Name:        fields.StringOr("name", ""),
		Description: fields.StringOr("description", ""),
		Category:    fields.StringOr("category", ""),
		Price:       fields.FloatOr("price", 0),
		Stock:       int(fields.IntOr("stock", 0)),
		IsActive:    fields.BoolOr("is_active", true),
		CreatedBy:   fields.StringOr("created_by", models.SystemUser),
	}
	rec.SpaceID = spaceID
	_, err = e.store.Create(rec)
	return err
}

func (e productExecutor) Update(spaceID, targetID string, fields envelope.FieldMap) error {
	product, err := e.store.GetByID(spaceID, targetID)
	if err != nil {
		return err
	}
	if product == nil {
		return errors.Errorf("product %v is not found in the space", targetID)
	}
	updMap := map[string]interface{}{}
	if fields.Has("code") {
		updMap["code"] = fields.StringOr("code", product.Code)
	}
	if fields.Has("name") {
		updMap["name"] = fields.StringOr("name", product.Name)
	}
	if fields.Has("description") {
		updMap["description"] = fields.StringOr("description", "")
	}
	if fields.Has("category") {
		updMap["category"] = fields.StringOr("category", product.Category)
	}
	if fields.Has("price") {
		updMap["price"] = fields.FloatOr("price", product.Price)
	}
	if fields.Has("stock") {
		updMap["stock"] = fields.IntOr("stock", int64(product.Stock))
	}
	if fields.Has("is_active") {
		updMap["is_active"] = fields.BoolOr("is_active", product.IsActive)
	}
	if fields.Has("modified_by") {
		updMap["modified_by"] = fields.StringOr("modified_by", "")
	}
	return e.store.Update(spaceID, targetID, updMap)
}

func (e productExecutor) Delete(spaceID, targetID string) error {
	product, err := e.store.GetByID(spaceID, targetID)
	if err != nil {
		return err
	}
	if product == nil {
		// already gone, nothing to do on retry
		return nil
	}
	return e.store.Delete(spaceID, targetID)
}
