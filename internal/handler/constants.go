package handler

import "time"

// Health
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	ReadyzTimeout     = 2 * time.Second
)

// Response messages
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgStoreUnavailable      = "actor store unavailable"
	ErrMsgMissingActor          = "actor id is required"
	ErrMsgReloadFailed          = "reload finished with errors"
	MsgReloaded                 = "registry reloaded"
	MsgActorCleared             = "actor data cleared"
	ErrMsgEncodeFailed          = "failed to encode response"
)

// Log messages
const (
	LogMsgReadinessFailed  = "Readiness check failed"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgRequestDecoded   = "Request decoded"
	LogMsgReloadRequested  = "Registry reload requested over HTTP"
	LogMsgReloadFailed     = "Registry reload failed"
	LogMsgActorReadFailed  = "Failed to read actor data"
	LogMsgActorClearFailed = "Failed to clear actor data"
)

// Log fields
const (
	LogFieldError  = "error"
	LogFieldAction = "action"
	LogFieldActor  = "actor"
	LogFieldCount  = "count"
)

// URL parameters
const (
	ParamActorID = "actorID"
)

// Response buffers
const (
	initialBufferSize   = 512
	maxPooledBufferSize = 64 << 10
)

const defaultWaterType = "river"
