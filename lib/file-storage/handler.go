package filestoragehandler

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"admin-dashboard-backend/config"
	"admin-dashboard-backend/db"
	filestoragestore "admin-dashboard-backend/lib/file-storage/store"
	filesapimodels "admin-dashboard-backend/models/api/files"
	dbmodels "admin-dashboard-backend/models/db"
	s3client "admin-dashboard-backend/s3"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	Upload(ctx context.Context, spaceID, uploadedBy, fileName, contentType string, fileBody []byte) (id string, err error)
	Download(ctx context.Context, spaceID, id string) (body []byte, rec *filesapimodels.FileView, err error)
	List(spaceID string, page, limit int) (list []filesapimodels.FileView, rowCount int64, err error)
	Delete(ctx context.Context, spaceID, id, deletedBy string) error
	MakeSpaceBucket(ctx context.Context, spaceID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		s3client: s3client.Client,
		store:    filestoragestore.NewInstance(db.DB),
	}
}

type impl struct {
	s3client *minio.Client
	store    filestoragestore.Provider
}

func (i impl) Upload(ctx context.Context, spaceID, uploadedBy, fileName, contentType string, fileBody []byte) (string, error) {
	logger := log.
		WithField("space_id", spaceID).
		WithField("file_name", fileName)
	err := i.MakeSpaceBucket(ctx, spaceID)
	if err != nil {
		logger.WithError(err).Error("failed to ensure the space bucket")
		return "", err
	}
	objectKey := uuid.NewString()
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	_, err = i.s3client.PutObject(ctx, i.getSpaceBucketName(spaceID), objectKey,
		bytes.NewReader(fileBody), int64(len(fileBody)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		logger.WithError(err).Error("failed to upload the object")
		return "", errors.Wrap(err, "failed to upload the file")
	}
	rec := dbmodels.FileStorage{
		Name:        fileName,
		ObjectKey:   objectKey,
		ContentType: contentType,
		Size:        int64(len(fileBody)),
		UploadedBy:  uploadedBy,
	}
	rec.SpaceID = spaceID
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("failed to save the file record")
		return "", err
	}
	return id, nil
}

func (i impl) Download(ctx context.Context, spaceID, id string) ([]byte, *filesapimodels.FileView, error) {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return nil, nil, err
	}
	if rec == nil {
		return nil, nil, errors.Errorf("file %v is not found", id)
	}
	object, err := i.s3client.GetObject(ctx, i.getSpaceBucketName(spaceID), rec.ObjectKey, minio.GetObjectOptions{})
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to get the object")
	}
	defer object.Close()
	body, err := io.ReadAll(object)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to read the object")
	}
	view := rec.ToModel()
	return body, &view, nil
}

func (i impl) List(spaceID string, page, limit int) ([]filesapimodels.FileView, int64, error) {
	list, rowCount, err := i.store.List(spaceID, page, limit)
	if err != nil {
		return nil, 0, err
	}
	result := make([]filesapimodels.FileView, 0, len(list))
	for _, rec := range list {
		result = append(result, rec.ToModel())
	}
	return result, rowCount, nil
}

func (i impl) Delete(ctx context.Context, spaceID, id, deletedBy string) error {
	rec, err := i.store.GetByID(spaceID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return errors.Errorf("file %v is not found", id)
	}
	err = i.s3client.RemoveObject(ctx, i.getSpaceBucketName(spaceID), rec.ObjectKey, minio.RemoveObjectOptions{})
	if err != nil {
		log.
			WithField("space_id", spaceID).
			WithField("file_id", id).
			WithError(err).
			Error("failed to remove the object, the record is still marked as deleted")
	}
	return i.store.MarkDeleted(spaceID, id, deletedBy)
}

func (i impl) MakeSpaceBucket(ctx context.Context, spaceID string) error {
	bucketName := i.getSpaceBucketName(spaceID)
	location := "us-east-1"
	exists, err := i.s3client.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return i.s3client.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: location})
}

func (i impl) getSpaceBucketName(spaceID string) string {
	return fmt.Sprintf("%s-%s", config.Conf.S3.BucketName, spaceID)
}
