package services

import (
	"errors"
	"time"

	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/middleware"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserService struct {
	Repos *repositories.Repos
}

func NewUserService(repos *repositories.Repos) *UserService {
	return &UserService{Repos: repos}
}

func (s *UserService) Register(input dto.RegisterInput) error {
	_, err := s.Repos.User.GetByUsername(input.Username)
	if err == nil {
		return ErrUsernameTaken
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := models.User{
		Username: input.Username,
		Password: string(hashed),
		Email:    input.Email,
	}
	return s.Repos.User.Create(&user)
}

func (s *UserService) Login(username, password string) (models.User, string, error) {
	user, err := s.Repos.User.GetByUsername(username)
	if err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return models.User{}, "", ErrInvalidCredentials
	}

	token, err := middleware.GenerateToken(user.UID, user.Username, 24*time.Hour)
	if err != nil {
		return models.User{}, "", err
	}
	return user, token, nil
}
