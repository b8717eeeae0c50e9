package spaceapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type SpaceUserCommonData struct {
	Email       string `json:"email"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	IsActive    bool   `json:"is_active"`
	SpaceID     string `json:"space_id"`
	Role        string `json:"role"`
}

type SpaceUserView struct {
	SpaceUserCommonData
	ID        string    `json:"id"`
	LastLogin time.Time `json:"last_login"`
}

type CreateSpaceUser struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number"`
	Role        string `json:"role"`
}

func (r CreateSpaceUser) Validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return errors.New("email is not set")
	}
	if r.Password == "" {
		return errors.New("password is not set")
	}
	if r.FirstName == "" || r.LastName == "" {
		return errors.New("user name is not set")
	}
	return nil
}

type UpdateSpaceUser struct {
	Password    *string `json:"password"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
	IsActive    *bool   `json:"is_active"`
	Role        *string `json:"role"`
}

func (r UpdateSpaceUser) Validate() error {
	if r.Password != nil && *r.Password == "" {
		return errors.New("password can not be empty")
	}
	return nil
}
