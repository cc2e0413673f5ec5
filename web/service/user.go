// Package service contains the business logic between the controllers and the
// database.
package service

import (
	"errors"

	"smoothblog/database"
	"smoothblog/database/model"
	"smoothblog/logger"
	"smoothblog/util/crypto"

	"gorm.io/gorm"
)

var (
	// ErrUserExists is returned on registration when the email or username is
	// already taken. Intentionally does not say which one collided.
	ErrUserExists = errors.New("user with the same username or email already exists")

	// ErrUserNotFound is returned when no user matches the given email or id.
	ErrUserNotFound = errors.New("user does not exist")

	// ErrWrongPassword is returned when the user exists but the password does
	// not match the stored hash.
	ErrWrongPassword = errors.New("incorrect password")
)

type UserService struct{}

// CreateUser inserts a new non-admin user with a freshly hashed password.
// Uniqueness of email and username is enforced by the database, not by a
// pre-check, so concurrent registrations cannot race past it.
func (s *UserService) CreateUser(email string, username string, password string) (*model.User, error) {
	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:    email,
		Username: username,
		Password: hash,
	}
	err = database.GetDB().Create(user).Error
	if database.IsDuplicate(err) {
		return nil, ErrUserExists
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CheckUser verifies the given credentials. The two failure modes are
// distinguishable on purpose, matching the login page behavior.
func (s *UserService) CheckUser(email string, password string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("email = ?", email).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil, err
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		return nil, ErrWrongPassword
	}
	return user, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if database.IsNotFound(err) {
		return nil, ErrUserNotFound
	} else if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]*model.User, error) {
	db := database.GetDB()

	var users []*model.User
	err := db.Model(model.User{}).Find(&users).Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteUser removes the user and all posts it owns in one transaction.
// Posts go first so no state ever references a deleted user. If the user does
// not exist nothing is deleted and ErrUserNotFound is returned.
func (s *UserService) DeleteUser(id int) error {
	return database.GetDB().Transaction(func(tx *gorm.DB) error {
		user := &model.User{}
		err := tx.Where("id = ?", id).First(user).Error
		if database.IsNotFound(err) {
			return ErrUserNotFound
		} else if err != nil {
			return err
		}

		if err := tx.Where("user_id = ?", id).Delete(&model.Post{}).Error; err != nil {
			return err
		}
		return tx.Delete(user).Error
	})
}
