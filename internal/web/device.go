package web

import "strings"

type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceMobile  Device = "mobile"
)

var mobileMarkers = []string{"iphone", "ipad", "android", "mobile"}

// DetectDevice classifies the caller from its User-Agent string so the
// landing page can pick the device-appropriate template.
func DetectDevice(userAgent string) Device {
	ua := strings.ToLower(userAgent)
	for _, marker := range mobileMarkers {
		if strings.Contains(ua, marker) {
			return DeviceMobile
		}
	}
	return DeviceDesktop
}

// LandingTemplate maps a device class to its landing page template.
func LandingTemplate(device Device) string {
	if device == DeviceMobile {
		return "home_mobile.html"
	}
	return "home.html"
}
