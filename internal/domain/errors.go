package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Key errors
	ErrMsgInvalidKey = "invalid namespaced key"

	// Environment parsing errors
	ErrMsgUnknownSeason       = "unknown season"
	ErrMsgUnknownWeather      = "unknown weather"
	ErrMsgUnknownWaterType    = "unknown water type"
	ErrMsgUnknownDartBehavior = "unknown dart behavior"

	// Content errors
	ErrMsgMalformedRecord  = "malformed content record"
	ErrMsgSourceFailed     = "content source failed to load"
	ErrMsgUnknownPredicate = "unknown predicate"
	ErrMsgInvalidArguments = "invalid predicate arguments"

	// Lookup errors
	ErrMsgItemNotFound   = "item not found"
	ErrMsgTraitsNotFound = "fish traits not found"

	// Interaction errors
	ErrMsgPresentationFailed = "presentation failed"
	ErrMsgInvalidTransition  = "invalid state transition"

	// Configuration errors
	ErrMsgInvalidCurve = "invalid chance curve"

	// Storage errors
	ErrMsgStoreUnavailable = "actor store unavailable"
	ErrMsgDatabaseError    = "database error"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	ErrInvalidKey = errors.New(ErrMsgInvalidKey)

	ErrUnknownSeason       = errors.New(ErrMsgUnknownSeason)
	ErrUnknownWeather      = errors.New(ErrMsgUnknownWeather)
	ErrUnknownWaterType    = errors.New(ErrMsgUnknownWaterType)
	ErrUnknownDartBehavior = errors.New(ErrMsgUnknownDartBehavior)

	ErrMalformedRecord  = errors.New(ErrMsgMalformedRecord)
	ErrSourceFailed     = errors.New(ErrMsgSourceFailed)
	ErrUnknownPredicate = errors.New(ErrMsgUnknownPredicate)
	ErrInvalidArguments = errors.New(ErrMsgInvalidArguments)

	ErrItemNotFound   = errors.New(ErrMsgItemNotFound)
	ErrTraitsNotFound = errors.New(ErrMsgTraitsNotFound)

	ErrPresentationFailed = errors.New(ErrMsgPresentationFailed)
	ErrInvalidTransition  = errors.New(ErrMsgInvalidTransition)

	ErrInvalidCurve = errors.New(ErrMsgInvalidCurve)

	ErrStoreUnavailable = errors.New(ErrMsgStoreUnavailable)
	ErrDatabaseError    = errors.New(ErrMsgDatabaseError)
)
