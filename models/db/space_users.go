package dbmodels

import (
	"fmt"
	"time"

	"admin-dashboard-backend/models"
	spaceapimodels "admin-dashboard-backend/models/api/space"
)

type SpaceUser struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);index"`
	IsActive    bool
	PhoneNumber string `gorm:"type:varchar(15)"`
	SpaceID     string `gorm:"type:varchar(36);index"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	LastLogin   time.Time
}

func (r SpaceUser) ToModel() spaceapimodels.SpaceUserView {
	return spaceapimodels.SpaceUserView{
		ID: r.ID,
		SpaceUserCommonData: spaceapimodels.SpaceUserCommonData{
			Email:       r.Email,
			FirstName:   r.FirstName,
			LastName:    r.LastName,
			PhoneNumber: r.PhoneNumber,
			IsActive:    r.IsActive,
			SpaceID:     r.SpaceID,
			Role:        r.Role.ToHuman(),
		},
		LastLogin: r.LastLogin,
	}
}

func (r SpaceUser) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
