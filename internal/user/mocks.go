package user

import (
	"github.com/stretchr/testify/mock"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) GetUser(id int) (*User, error) {
	args := m.Called(id)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*User, error) {
	args := m.Called(username)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) CreateUser(username, password string) (*User, error) {
	args := m.Called(username, password)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}

func (m *MockUserRepository) ValidateUser(username, password string) (*User, error) {
	args := m.Called(username, password)
	var u *User
	if args.Get(0) != nil {
		u = args.Get(0).(*User)
	}
	return u, args.Error(1)
}
