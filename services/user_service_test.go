package services

import (
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/hctseng/formcraft-go/config"
	"github.com/hctseng/formcraft-go/dto"
	"github.com/hctseng/formcraft-go/middleware"
	"github.com/hctseng/formcraft-go/models"
	"github.com/hctseng/formcraft-go/repositories"
	"github.com/hctseng/formcraft-go/repositories/mock_repositories"
	"github.com/stretchr/testify/assert"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func setupUserServiceMocks(t *testing.T) (*UserService, *mock_repositories.MockUserRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(func() { ctrl.Finish() })

	config.JwtSecret = "test-secret"
	middleware.Init()

	mockUser := mock_repositories.NewMockUserRepo(ctrl)
	repos := &repositories.Repos{User: mockUser}
	return NewUserService(repos), mockUser
}

func TestRegister_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("alice").Return(models.User{}, gorm.ErrRecordNotFound)
	mockUser.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
		assert.NotEqual(t, "123456", u.Password, "password must be stored hashed")
		return nil
	})

	err := svc.Register(dto.RegisterInput{Username: "alice", Password: "123456"})
	assert.NoError(t, err)
}

func TestRegister_UsernameTaken(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("admin").Return(models.User{UID: 1}, nil)

	err := svc.Register(dto.RegisterInput{Username: "admin", Password: "123456"})
	assert.Equal(t, ErrUsernameTaken, err)
}

func TestLogin_Success(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByUsername("alice").Return(models.User{UID: 7, Username: "alice", Password: string(hashed)}, nil)

	user, token, err := svc.Login("alice", "123456")
	assert.NoError(t, err)
	assert.Equal(t, uint(7), user.UID)
	assert.NotEmpty(t, token)

	claims, err := middleware.ParseToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("123456"), bcrypt.DefaultCost)
	mockUser.EXPECT().GetByUsername("alice").Return(models.User{Username: "alice", Password: string(hashed)}, nil)

	_, _, err := svc.Login("alice", "wrong")
	assert.Equal(t, ErrInvalidCredentials, err)
}

func TestLogin_UnknownUser(t *testing.T) {
	svc, mockUser := setupUserServiceMocks(t)

	mockUser.EXPECT().GetByUsername("ghost").Return(models.User{}, gorm.ErrRecordNotFound)

	_, _, err := svc.Login("ghost", "123456")
	assert.Equal(t, ErrInvalidCredentials, err)
}
