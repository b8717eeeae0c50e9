package config

import (
	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr string `default:"" env:"APP_HOST"`
		Port       int    `default:"8080"  env:"APP_PORT"`
	}
	Database struct {
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"admin-dashboard" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	Auth struct {
		JWTSecret      string `default:"" env:"JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"JWT_EXPIRE_IN_SEC"`
	}
	AdminPanelAuth struct {
		JWTSecret      string `default:"" env:"ADMIN_JWT_SECRET"`
		JWTExpireInSec int    `default:"86400" env:"ADMIN_JWT_EXPIRE_IN_SEC"`
	}
	Admin struct {
		Email       string `default:"" env:"ADMIN_EMAIL"`
		Password    string `default:"" env:"ADMIN_PASSWORD"`
		FirstName   string `default:"Super" env:"ADMIN_FIRST_NAME"`
		LastName    string `default:"Admin" env:"ADMIN_LAST_NAME"`
		PhoneNumber string `default:"" env:"ADMIN_PHONE"`
	}
	S3 struct {
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		BucketName      string `default:"admin-dashboard" env:"S3_BUCKET_NAME"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
	}
	Sweep struct {
		FirstRunDelayInSec int `default:"30" env:"SWEEP_FIRST_RUN_DELAY_IN_SEC"`
		RunIntervalInSec   int `default:"60" env:"SWEEP_RUN_INTERVAL_IN_SEC"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
