package domain

import (
	"errors"
)

var (
	ErrInternal = errors.New("internal error")

	// * Data errors.
	ErrDataNotFound    = errors.New("data not found")
	ErrNoUpdatedData   = errors.New("no data to update")
	ErrConflictingData = errors.New("data conflicts with existing data in unique column")

	// * Communication errors.
	ErrBadRequest = errors.New("error parsing request")

	// * Authority errors.
	ErrTokenCreation              = errors.New("error creating token")
	ErrExpiredToken               = errors.New("access token has expired")
	ErrInvalidToken               = errors.New("access token is invalid")
	ErrInvalidCredentials         = errors.New("invalid email or password")
	ErrEmptyAuthorizationHeader   = errors.New("authorization header is not provided")
	ErrInvalidAuthorizationHeader = errors.New("authorization header format is invalid")
	ErrInvalidAuthorizationType   = errors.New("authorization type is not supported")
	ErrUnauthorized               = errors.New("user is unauthorized to access the resource")
	ErrForbidden                  = errors.New("user is forbidden to access the resource")

	// * Business errors.
	ErrValidation                = errors.New("invalid order data")
	ErrPaymentVerificationFailed = errors.New("payment verification failed")
	ErrAmountMismatch            = errors.New("order total does not match item sum")
	ErrDuplicatePayment          = errors.New("order already created for this payment")
	ErrInvalidTransition         = errors.New("order status transition is not allowed")

	// * Notification errors.
	ErrTemplateNotFound     = errors.New("notification template not found")
	ErrNotificationDispatch = errors.New("notification dispatch failed")
)
