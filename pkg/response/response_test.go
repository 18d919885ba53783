package response

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	resp := Success(map[string]string{"id": "123"})

	assert.True(t, resp.Success)
	assert.NotNil(t, resp.Data)
	assert.Nil(t, resp.Error)
}

func TestError(t *testing.T) {
	resp := Error(ErrCodeForbidden, "Access denied")

	assert.False(t, resp.Success)
	assert.Nil(t, resp.Data)
	assert.Equal(t, ErrCodeForbidden, resp.Error.Code)
	assert.Equal(t, "Access denied", resp.Error.Message)
}

func TestErrorWithDetails(t *testing.T) {
	details := map[string]string{"name": "required"}
	resp := ErrorWithDetails(ErrCodeValidationFailed, "Validation failed", details)

	assert.False(t, resp.Success)
	assert.Equal(t, details, resp.Error.Details)
}

func TestPaginated(t *testing.T) {
	tests := []struct {
		name           string
		page           int
		perPage        int
		total          int64
		wantTotalPages int
	}{
		{"exact pages", 1, 20, 40, 2},
		{"partial last page", 1, 20, 41, 3},
		{"empty", 1, 20, 0, 0},
		{"single item", 1, 20, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := Paginated([]string{}, tt.page, tt.perPage, tt.total)

			assert.True(t, resp.Success)
			assert.Equal(t, tt.page, resp.Meta.Page)
			assert.Equal(t, tt.perPage, resp.Meta.PerPage)
			assert.Equal(t, tt.total, resp.Meta.Total)
			assert.Equal(t, tt.wantTotalPages, resp.Meta.TotalPages)
		})
	}
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(ErrCodeForbidden))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeCompanyNotSelected))
	assert.Equal(t, http.StatusForbidden, GetHTTPStatus(ErrCodeCompanyInactive))
	assert.Equal(t, http.StatusConflict, GetHTTPStatus(ErrCodeInsufficientStock))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus("UNKNOWN_CODE"))
}

func TestCommonErrorResponses(t *testing.T) {
	assert.Equal(t, "Authentication required", Unauthorized("").Error.Message)
	assert.Equal(t, "Access denied", Forbidden("").Error.Message)
	assert.Equal(t, "Resource not found", NotFound("").Error.Message)
	assert.Equal(t, "custom", BadRequest("custom").Error.Message)
	assert.Equal(t, ErrCodeInternalError, InternalError("").Error.Code)
	assert.Equal(t, ErrCodeServiceUnavailable, ServiceUnavailable("").Error.Code)
}
