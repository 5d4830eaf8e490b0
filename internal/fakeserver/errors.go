package fakeserver

import (
	"fmt"
	"net/http"
)

type apiError struct {
	status  int
	code    string
	message string
}

func (e *apiError) Error() string {
	return fmt.Sprintf("%s: %s", e.code, e.message)
}

func badRequest(msg string) *apiError {
	return &apiError{status: http.StatusBadRequest, code: "bad_request", message: msg}
}

var (
	errMemberNotFound  = badRequest("member not found")
	errInviteNotFound  = &apiError{status: http.StatusNotFound, code: "not_found", message: "invitation not found"}
	errInviteResolved  = &apiError{status: http.StatusConflict, code: "conflict", message: "invitation already answered"}
	errProjectNotFound = &apiError{status: http.StatusNotFound, code: "not_found", message: "project not found"}
	errUserNotFound    = &apiError{status: http.StatusNotFound, code: "not_found", message: "user not found"}
)
