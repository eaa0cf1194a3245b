package user

import (
	"errors"

	"github.com/Anthonyushie/lightning-rps/internal/apperrors"
)

type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

func (u *UserService) Signup(creds Credentials) (string, error) {
	created, err := u.repo.CreateUser(creds.Username, creds.Password)
	if err != nil {
		return "", err
	}

	token, errJWT := GenerateJWT(created.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) Login(creds Credentials) (string, error) {
	validated, err := u.repo.ValidateUser(creds.Username, creds.Password)
	if err != nil {
		return "", errors.New("invalid credentials")
	}
	token, errJWT := GenerateJWT(validated.ID)
	if errJWT != nil {
		return "", apperrors.NewAppError(500, "error creating jwt token", errJWT)
	}
	return token, nil
}

func (u *UserService) GetUser(id int) (*User, error) {
	found, err := u.repo.GetUser(id)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", err)
	}
	if found == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}
	return found, nil
}

func (u *UserService) GetUserByUsername(username string) (*User, error) {
	found, err := u.repo.GetUserByUsername(username)
	if err != nil {
		return nil, apperrors.NewAppError(500, "error fetching user", err)
	}
	if found == nil {
		return nil, apperrors.NewAppError(404, "user not found", errors.New("user not found"))
	}
	return found, nil
}
