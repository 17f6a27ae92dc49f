package models

import "errors"

// APIResponse is the single result type every operation resolves to, success
// or failure. The codes are a fixed contract with the clients: several sit in
// otherwise unassigned HTTP ranges (407, 412-430) and must not be remapped.
// It implements error so failures flow through ordinary return values.
type APIResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (r *APIResponse) Error() string {
	return r.Message
}

// JSON is the wire shape of the response body.
func (r *APIResponse) JSON() map[string]any {
	return map[string]any{"code": r.Code, "message": r.Message}
}

// AsAPIResponse unwraps err into its APIResponse if it carries one.
func AsAPIResponse(err error) *APIResponse {
	var resp *APIResponse
	if errors.As(err, &resp) {
		return resp
	}
	return nil
}

func Success() *APIResponse {
	return &APIResponse{Code: 200, Message: "Success"}
}

func SuccessCreated() *APIResponse {
	return &APIResponse{Code: 201, Message: "Success"}
}

func UnknownUser() *APIResponse {
	return &APIResponse{Code: 400, Message: "User could not be found."}
}

func Unauthorized() *APIResponse {
	return &APIResponse{Code: 401, Message: "User could not be authenticated."}
}

func InvalidPermissionLevel() *APIResponse {
	return &APIResponse{Code: 403, Message: "User does not have the required permission level."}
}

func LinkDoesntBelongToUser() *APIResponse {
	return &APIResponse{Code: 407, Message: "The link does not belong to the user."}
}

func LinkDoesntExist() *APIResponse {
	return &APIResponse{Code: 408, Message: "The link could not be found."}
}

func CompetitionDisabled() *APIResponse {
	return &APIResponse{Code: 412, Message: "The house competition is disabled."}
}

func UnknownPointLog() *APIResponse {
	return &APIResponse{Code: 413, Message: "The point log could not be found."}
}

func UnknownHouseCode() *APIResponse {
	return &APIResponse{Code: 415, Message: "The house code could not be found."}
}

func PointLogAlreadyHandled() *APIResponse {
	return &APIResponse{Code: 416, Message: "The point log has already been handled with this action."}
}

func UnknownPointType() *APIResponse {
	return &APIResponse{Code: 417, Message: "The point type could not be found."}
}

func PointTypeDisabled() *APIResponse {
	return &APIResponse{Code: 418, Message: "The point type is disabled."}
}

func PointTypeSelfSubmissionDisabled() *APIResponse {
	return &APIResponse{Code: 419, Message: "The point type may not be self-submitted by residents."}
}

func MissingRequiredParameters() *APIResponse {
	return &APIResponse{Code: 422, Message: "Required parameters are missing from the request."}
}

func IncorrectFormat() *APIResponse {
	return &APIResponse{Code: 426, Message: "A parameter has an incorrect format."}
}

func InsufficientPointTypePermission() *APIResponse {
	return &APIResponse{Code: 430, Message: "User may not use this point type."}
}

func ServerError() *APIResponse {
	return &APIResponse{Code: 500, Message: "An unexpected server error occurred."}
}
