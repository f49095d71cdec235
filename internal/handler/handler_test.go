package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type ValidatorMock struct {
	mock.Mock
}

func (m *ValidatorMock) Struct(ctx context.Context, s any) error {
	return m.Called(ctx, s).Error(0)
}

func (m *ValidatorMock) Var(ctx context.Context, field any, tag string) error {
	return m.Called(ctx, field, tag).Error(0)
}

func sendTestRequest(t *testing.T, method string, body io.Reader, handlerFunc http.HandlerFunc) *http.Response {
	t.Helper()

	w := httptest.NewRecorder()
	handlerFunc(w, httptest.NewRequest(method, "/", body))

	return w.Result()
}

// sendTestRequestWithParam подставляет значение URL-параметра chi в контекст
// запроса, как это делает маршрутизатор.
func sendTestRequestWithParam(t *testing.T, method, key, value string, body io.Reader, handlerFunc http.HandlerFunc) *http.Response {
	t.Helper()

	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)

	r := httptest.NewRequest(method, "/", body)
	r = r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))

	w := httptest.NewRecorder()
	handlerFunc(w, r)

	return w.Result()
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())

	return string(b)
}
