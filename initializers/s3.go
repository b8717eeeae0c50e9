package initializers

import (
	"context"

	s3client "admin-dashboard-backend/s3"

	log "github.com/sirupsen/logrus"
)

func InitS3() {
	minioClient, err := s3client.NewClient()
	if err != nil {
		log.WithError(err).Error("failed to initialize the S3 client")
		return
	}

	_, err = minioClient.ListBuckets(context.Background())
	if err != nil {
		log.WithError(err).Error("S3 connection check failed, ListBuckets returned an error")
	}

	s3client.Client = minioClient
	log.Info("S3 client successfully initialized")
}
