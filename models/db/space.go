package dbmodels

import spaceapimodels "admin-dashboard-backend/models/api/space"

type Space struct {
	BaseModel
	OrganizationName string `gorm:"type:varchar(255)"`
	Description      string `gorm:"type:varchar(500)"`
	IsActive         bool
}

func (r Space) ToModel() spaceapimodels.SpaceView {
	return spaceapimodels.SpaceView{
		ID:               r.ID,
		OrganizationName: r.OrganizationName,
		Description:      r.Description,
		IsActive:         r.IsActive,
		CreatedAt:        r.CreatedAt,
	}
}
