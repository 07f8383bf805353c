package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrEmailRegistered    = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPathNotFound       = errors.New("learning path not found")
	ErrTopicNotFound      = errors.New("topic not found")
	ErrTopicLocked        = errors.New("topic chat is locked")
	ErrNoActiveSkillCheck = errors.New("no active skill check for this topic")
	ErrBlockerNotFound    = errors.New("blocker not found")
	ErrEmptyResume        = errors.New("resume contains no extractable text")
	ErrUnsupportedFile    = errors.New("unsupported file type")
)
