package dbmodels

import (
	"time"

	filesapimodels "admin-dashboard-backend/models/api/files"
)

type FileStorage struct {
	BaseSpaceModel
	Name        string `gorm:"type:varchar(255)"`
	ObjectKey   string `gorm:"type:varchar(36)"`
	ContentType string `gorm:"type:varchar(150)"`
	Size        int64
	UploadedBy  string `gorm:"type:varchar(300)"`
	IsDeleted   bool
	DeletedBy   string `gorm:"type:varchar(300)"`
	DeletedAt   *time.Time
}

func (f FileStorage) ToModel() filesapimodels.FileView {
	return filesapimodels.FileView{
		ID:          f.ID,
		Name:        f.Name,
		SpaceID:     f.SpaceID,
		ContentType: f.ContentType,
		Size:        f.Size,
		UploadedBy:  f.UploadedBy,
		UploadedAt:  f.CreatedAt,
	}
}
