package handlers

import "net/http"

// NotFoundHandler answers every request outside the route table, including
// known paths called with an unsupported method.
func NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	_ = WriteError(w, http.StatusNotFound, msgNotFound)
}

func TooManyRequestsHandler(w http.ResponseWriter, r *http.Request) {
	_ = WriteError(w, http.StatusTooManyRequests, msgTooManyRequests)
}

func InternalErrorHandler(w http.ResponseWriter, r *http.Request) {
	_ = WriteError(w, http.StatusInternalServerError, msgInternalError)
}
