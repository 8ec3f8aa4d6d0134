package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type problem struct{}

func (problem) HTTPCode() int     { return http.StatusConflict }
func (problem) ErrorCode() string { return "USER_ALREADY_EXISTS" }
func (problem) Message() string   { return "A user with that email already exists." }
func (problem) Details() string   { return "email" }

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestSuccess_DefaultMessage(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Success(c, http.StatusCreated, map[string]int{"updated": 2}, ""))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"success":true,"code":201,"message":"Success","data":{"updated":2}}`, rec.Body.String())
}

func TestFail(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Fail(c, problem{}))

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.JSONEq(t, `{
		"success": false,
		"code": 409,
		"message": "A user with that email already exists.",
		"error": {"code": "USER_ALREADY_EXISTS", "details": "email"}
	}`, rec.Body.String())
}

func TestError_FallsBackToStatusText(t *testing.T) {
	c, rec := newContext()

	require.NoError(t, Error(c, http.StatusMethodNotAllowed, "HTTP_ERROR", "", ""))

	assert.JSONEq(t, `{"success":false,"code":405,"message":"Method Not Allowed","error":{"code":"HTTP_ERROR"}}`, rec.Body.String())
}
