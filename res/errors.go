package res

import (
	"errors"
	"net/http"
)

func NewErrorRes(statusCode int, message string) *ErrorRes {
	return &ErrorRes{
		Err:        errors.New(message),
		StatusCode: statusCode,
	}
}

func BadRequest(message string) *ErrorRes {
	return NewErrorRes(http.StatusBadRequest, message)
}

func NotFound(message string) *ErrorRes {
	return NewErrorRes(http.StatusNotFound, message)
}
