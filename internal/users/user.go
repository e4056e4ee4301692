package users

import (
	"errors"
)

const (
	minimumAgeConstant = 1
	maximumAgeConstant = 120
)

// ErrInvalidUserData indicates a candidate record that violates the name or age rule.
var ErrInvalidUserData = errors.New("invalid user data")

// ErrUserNotFound indicates that no record carries the requested name.
var ErrUserNotFound = errors.New("user not found")

// User is a stored record. Name acts as the lookup key; duplicates are allowed.
type User struct {
	Name string
	Age  int
}

// Valid evaluates both the age and the name rule.
func (user User) Valid() bool {
	ageCondition := user.Age >= minimumAgeConstant && user.Age <= maximumAgeConstant
	nameCondition := len(user.Name) > 0
	return ageCondition && nameCondition
}
