package spaceapimodels

import (
	"time"

	"github.com/pkg/errors"
)

type SpaceView struct {
	ID               string    `json:"id"`
	OrganizationName string    `json:"organization_name"`
	Description      string    `json:"description"`
	IsActive         bool      `json:"is_active"`
	CreatedAt        time.Time `json:"created_at"`
}

type CreateSpace struct {
	OrganizationName string          `json:"organization_name"`
	Description      string          `json:"description"`
	AdminUser        CreateSpaceUser `json:"admin_user"`
}

func (r CreateSpace) Validate() error {
	if r.OrganizationName == "" {
		return errors.New("organization name is not set")
	}
	return r.AdminUser.Validate()
}

type UpdateSpace struct {
	OrganizationName *string `json:"organization_name"`
	Description      *string `json:"description"`
	IsActive         *bool   `json:"is_active"`
}

func (r UpdateSpace) Validate() error {
	if r.OrganizationName != nil && *r.OrganizationName == "" {
		return errors.New("organization name can not be empty")
	}
	return nil
}
