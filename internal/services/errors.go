package services

import "errors"

var (
	// ErrEmailTaken means the signup email already exists in that role's collection
	ErrEmailTaken = errors.New("email already in use")
	// ErrInvalidCredentials covers both unknown email and wrong password, so a
	// signin response never reveals whether an email is registered
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrCourseNotFound covers both a nonexistent course and a course owned by
	// a different admin
	ErrCourseNotFound = errors.New("course not found")
	// ErrAlreadyPurchased means a purchase exists for the (user, course) pair
	ErrAlreadyPurchased = errors.New("course already purchased")
)
