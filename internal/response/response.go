package response

import "github.com/mindease/mindease/internal"

// APIResponse is the failure envelope. Successful responses return their
// payload directly; only errors are wrapped.
type APIResponse struct {
	Error *internal.AppError `json:"error,omitempty"`
}

func BadRequest(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(400, msg)}
}

func NotFound(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(404, msg)}
}

func InternalError(msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(500, msg)}
}

func NewAppError(status int, msg string) APIResponse {
	return APIResponse{Error: internal.NewAppError(status, msg)}
}

// FromError maps a domain error kind to its envelope and status.
func FromError(err error) (int, APIResponse) {
	switch {
	case internal.IsValidation(err):
		return 400, BadRequest(err.Error())
	case internal.IsNotFound(err):
		return 404, NotFound(err.Error())
	case internal.IsTransport(err):
		return 502, NewAppError(502, err.Error())
	default:
		return 500, InternalError(err.Error())
	}
}
