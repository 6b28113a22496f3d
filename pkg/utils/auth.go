package utils

import (
	"errors"

	"github.com/civichub/community-go/pkg/types"
	"github.com/gin-gonic/gin"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

var GetUserNameFromContext = func(c *gin.Context) (string, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return "", errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return "", errors.New("invalid user claims type")
	}

	return claims.Username, nil
}

// GetRoleFromContext returns the signed-in principal's role. Unauthenticated
// requests yield the empty string, which the permission gate treats as an
// unknown role.
var GetRoleFromContext = func(c *gin.Context) string {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return ""
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return ""
	}

	return claims.Role
}
