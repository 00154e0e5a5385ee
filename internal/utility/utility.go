package utility

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// GetRealIP is a helper function to get the user's real IP address
// It checks proxy headers (like from ngrok) first.
func GetRealIP(c echo.Context) string {
	// 1. Check X-Forwarded-For first
	// This header can be a list: "client, proxy1, proxy2"
	xForwardedFor := c.Request().Header.Get("X-Forwarded-For")
	if xForwardedFor != "" {
		// Take the first IP in the list
		ips := strings.Split(xForwardedFor, ",")
		firstIP := strings.TrimSpace(ips[0])
		return firstIP
	}

	// 2. Check X-Real-IP
	// This is often set by proxies like Nginx or ngrok
	xRealIP := c.Request().Header.Get("X-Real-IP")
	if xRealIP != "" {
		return xRealIP
	}

	// 3. If all else fails, get the direct IP
	return c.RealIP()
}

// ParseIntParam parses a query/path parameter with a fallback default.
func ParseIntParam(raw string, def int) int {
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

// GetUserIDFromContext retrieves the authenticated user id set by the
// identity middleware. Authentication itself happens upstream (gateway); the
// engine only requires a well-formed user uuid.
func GetUserIDFromContext(c echo.Context) (string, error) {
	userID, ok := c.Get("user_id").(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user ID not found in context")
	}
	return userID, nil
}

// ValidUserID reports whether the given id is a well-formed uuid.
func ValidUserID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
