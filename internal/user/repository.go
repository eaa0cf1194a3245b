package user

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Anthonyushie/lightning-rps/pkg/db"
)

type UserRepository interface {
	GetUser(id int) (*User, error)
	GetUserByUsername(username string) (*User, error)
	CreateUser(username, password string) (*User, error)
	ValidateUser(username, password string) (*User, error)
}

// DBUserRepository persists users through the shared gorm connection.
type DBUserRepository struct{}

func NewDBUserRepository() *DBUserRepository {
	return &DBUserRepository{}
}

func (r *DBUserRepository) GetUser(id int) (*User, error) {
	var u User
	result := db.DB.Where("id = ?", id).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &u, nil
}

func (r *DBUserRepository) GetUserByUsername(username string) (*User, error) {
	var u User
	result := db.DB.Where("username = ?", username).First(&u)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &u, nil
}

func (r *DBUserRepository) CreateUser(username, password string) (*User, error) {
	existing, err := r.GetUserByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("user already exists")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		return nil, err
	}
	newUser := User{
		Username: username,
		Password: string(hashed),
	}

	if err := db.DB.Create(&newUser).Error; err != nil {
		return nil, err
	}

	return &newUser, nil
}

func (r *DBUserRepository) ValidateUser(username, password string) (*User, error) {
	var u User
	result := db.DB.Where("username = ?", username).First(&u)
	if result.Error != nil {
		return nil, result.Error
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		return nil, err
	}

	return &u, nil
}
