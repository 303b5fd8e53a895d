package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/rogerio-castellano/employee-portal/internal/config"
	api "github.com/rogerio-castellano/employee-portal/internal/http"
	handler "github.com/rogerio-castellano/employee-portal/internal/http/handlers"
	"github.com/rogerio-castellano/employee-portal/internal/repo"
	"go.uber.org/zap"
)

func newRouter() http.Handler {
	accounts, products, err := repo.NewSeededRepositories()
	if err != nil {
		panic(fmt.Sprintf("error building seed repositories: %v", err))
	}

	h := handler.NewHandlers(accounts, products, config.DefaultVersion, zap.NewNop())
	return api.NewRouter(h, api.Options{})
}

func doRequest(r http.Handler, method, target string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func get(r http.Handler, target string) *httptest.ResponseRecorder {
	return doRequest(r, http.MethodGet, target, nil)
}

func login(r http.Handler, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(handler.CredentialsRequest{Username: username, Password: password})
	return loginRaw(r, string(body))
}

func loginRaw(r http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(w *httptest.ResponseRecorder, v any) error {
	return json.NewDecoder(bytes.NewReader(w.Body.Bytes())).Decode(v)
}
