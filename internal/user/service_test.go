package user

import (
	"errors"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// mockGenerateJWT is a helper to override GenerateJWT in tests
var mockGenerateJWT func(id uint) (string, error)

func TestMain(m *testing.M) {
	// Patch GenerateJWT for all tests
	orig := GenerateJWT
	GenerateJWT = func(id uint) (string, error) {
		if mockGenerateJWT != nil {
			return mockGenerateJWT(id)
		}
		return orig(id)
	}
	code := m.Run()
	GenerateJWT = orig
	os.Exit(code)
}

func TestUserService_Signup(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	created := &User{ID: 1, Username: "test"}
	mockRepo.On("CreateUser", "test", "pass").Return(created, nil)
	mockGenerateJWT = func(id uint) (string, error) { return "token123", nil }

	token, err := service.Signup(Credentials{Username: "test", Password: "pass"})
	assert.NoError(t, err)
	assert.Equal(t, "token123", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	validated := &User{ID: 2, Username: "foo"}
	mockRepo.On("ValidateUser", "foo", "bar").Return(validated, nil)
	mockGenerateJWT = func(id uint) (string, error) { return "tok456", nil }

	token, err := service.Login(Credentials{Username: "foo", Password: "bar"})
	assert.NoError(t, err)
	assert.Equal(t, "tok456", token)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Login_InvalidCredentials(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("ValidateUser", "foo", "wrong").Return(nil, errors.New("bad password"))

	_, err := service.Login(Credentials{Username: "foo", Password: "wrong"})
	assert.Error(t, err)
	assert.Equal(t, "invalid credentials", err.Error())
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetUser", 3).Return(&User{ID: 3, Username: "alice"}, nil)

	u, err := service.GetUser(3)
	assert.NoError(t, err)
	assert.Equal(t, "alice", u.Username)
	mockRepo.AssertExpectations(t)
}

func TestUserService_GetUser_NotFound(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)

	mockRepo.On("GetUser", 99).Return(nil, nil)

	_, err := service.GetUser(99)
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}

func TestUserService_Signup_Error(t *testing.T) {
	mockRepo := &MockUserRepository{}
	service := NewUserService(mockRepo)
	mockRepo.On("CreateUser", "err", "fail").Return(nil, errors.New("fail"))

	_, err := service.Signup(Credentials{Username: "err", Password: "fail"})
	assert.Error(t, err)
	mockRepo.AssertExpectations(t)
}
