package handlers

import "context"

// contextKey is a private type for request context keys.
type contextKey string

const (
	// UserIDKey stores the authenticated user ID in the request context.
	UserIDKey contextKey = "user_id"
	// UsernameKey stores the authenticated username in the request context.
	UsernameKey contextKey = "username"
	// DeviceIDKey stores the device fingerprint the token was issued to.
	DeviceIDKey contextKey = "device_id"
)

// GetUserID extracts the authenticated user ID from the request context.
func GetUserID(ctx context.Context) (string, bool) {
	userID, ok := ctx.Value(UserIDKey).(string)
	return userID, ok
}

// GetUsername extracts the authenticated username from the request context.
func GetUsername(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetDeviceID extracts the device fingerprint from the request context.
func GetDeviceID(ctx context.Context) (string, bool) {
	deviceID, ok := ctx.Value(DeviceIDKey).(string)
	return deviceID, ok
}
