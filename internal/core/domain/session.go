package domain

import "strings"

// DeviceClass is the device category inferred from a user agent.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
	DeviceTablet  DeviceClass = "tablet"
)

// SessionContext carries the anonymous per-browser identity and client
// details for one ad request. The HTTP layer constructs it from the
// ad_session cookie and request headers and passes it into the usecase.
type SessionContext struct {
	SessionID string
	IP        string
	UserAgent string
	Referrer  string
	Device    DeviceClass
}

var tabletSignatures = []string{"ipad", "tablet", "kindle", "silk", "playbook"}

var mobileSignatures = []string{"mobi", "iphone", "ipod", "android", "blackberry", "windows phone", "opera mini"}

// InferDevice classifies a user agent as tablet, mobile or desktop.
// Tablet signatures are checked first since tablet user agents commonly
// also contain mobile markers. Unknown agents default to desktop.
func InferDevice(userAgent string) DeviceClass {
	ua := strings.ToLower(userAgent)
	for _, s := range tabletSignatures {
		if strings.Contains(ua, s) {
			return DeviceTablet
		}
	}
	for _, s := range mobileSignatures {
		if strings.Contains(ua, s) {
			return DeviceMobile
		}
	}
	return DeviceDesktop
}
