package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/boring-ventures/billiards-management/internal/scope"
	"github.com/boring-ventures/billiards-management/internal/selection"
	"github.com/boring-ventures/billiards-management/pkg/logger"
	"github.com/boring-ventures/billiards-management/pkg/response"
)

// ContextKeyEffectiveCompany holds the company id resolved for this request
const ContextKeyEffectiveCompany = "effective_company_id"

// CompanyHeader is the header carrying an explicit company request
const CompanyHeader = "X-Company-ID"

// CompanyScope resolves the effective company for every request and aborts
// with the mapped status when access is denied. The remembered selection is
// consulted only for elevated principals that sent no explicit request, and
// its value still goes through full resolution.
func CompanyScope(resolver *scope.Resolver, selections selection.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Unauthorized("User not authenticated"))
			return
		}
		role, _ := GetRole(c)
		assigned, _ := GetCompanyID(c)

		principal := scope.Principal{ID: userID, Role: role}
		if assigned != "" {
			principal.CompanyID = &assigned
		}

		requested := c.GetHeader(CompanyHeader)
		if requested == "" {
			requested = c.Query("company_id")
		}
		if requested == "" && role.IsElevated() && selections != nil {
			remembered, err := selections.Get(c.Request.Context(), userID)
			if err != nil {
				// A broken hint store must not block the request
				logger.ErrorCtx(c.Request.Context(), "failed to read remembered selection",
					zap.String("user_id", userID),
					zap.Error(err),
				)
			} else {
				requested = remembered
			}
		}

		resolved, err := resolver.Resolve(c.Request.Context(), principal, requested)
		if err != nil {
			logger.ErrorCtx(c.Request.Context(), "company scope resolution failed",
				zap.String("user_id", userID),
				zap.Error(err),
			)
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, response.ServiceUnavailable("Could not verify company access"))
			return
		}

		if resolved.Denied {
			status, body := denialResponse(resolved.Reason)
			c.AbortWithStatusJSON(status, body)
			return
		}

		c.Set(ContextKeyEffectiveCompany, resolved.CompanyID)
		c.Next()
	}
}

// denialResponse maps a scope denial to its HTTP representation. Denials that
// reveal nothing about other companies share a generic 403; only the
// recoverable no-selection case gets a distinct code so clients can prompt.
func denialResponse(reason scope.DenialReason) (int, *response.Response) {
	switch reason {
	case scope.DenialCompanyNotFound:
		return http.StatusNotFound, response.NotFound("Company not found")
	case scope.DenialNoCompanySelected:
		return http.StatusConflict, response.Error(response.ErrCodeCompanyNotSelected, "No company selected")
	case scope.DenialCompanyInactive, scope.DenialNoCompanyAssigned, scope.DenialForbiddenCrossCompany:
		return http.StatusForbidden, response.Forbidden("Company access denied")
	default:
		return http.StatusForbidden, response.Forbidden("Company access denied")
	}
}

// GetEffectiveCompany extracts the resolved company id from gin context
func GetEffectiveCompany(c *gin.Context) (string, bool) {
	companyID, exists := c.Get(ContextKeyEffectiveCompany)
	if !exists {
		return "", false
	}
	id, ok := companyID.(string)
	return id, ok && id != ""
}
