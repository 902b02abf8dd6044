package touchpoint

import (
	"regexp"
	"strings"
)

// Device types reported in touchpoint metadata
const (
	DeviceTablet  = "tablet"
	DeviceMobile  = "mobile"
	DeviceDesktop = "desktop"
)

var (
	tabletPattern = regexp.MustCompile(`(?i)ipad|tablet|playbook|silk`)
	mobilePattern = regexp.MustCompile(`(?i)mobile|iphone|ipod|android|blackberry|iemobile|opera mini|wpdesktop`)
)

// GetDeviceType classifies a user agent. iPad-like agents are tablets even
// though they also match the generic mobile pattern.
func GetDeviceType(userAgent string) string {
	if tabletPattern.MatchString(userAgent) {
		return DeviceTablet
	}
	lower := strings.ToLower(userAgent)
	if strings.Contains(lower, "android") && !strings.Contains(lower, "mobile") {
		return DeviceTablet
	}
	if mobilePattern.MatchString(userAgent) {
		return DeviceMobile
	}
	return DeviceDesktop
}
