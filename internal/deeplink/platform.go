package deeplink

import "regexp"

// Platform is the coarse client classification driving the redirect sequence.
type Platform int

const (
	PlatformOther Platform = iota
	PlatformAndroid
	PlatformIOS
)

var (
	androidUA = regexp.MustCompile(`(?i)android`)
	iosUA     = regexp.MustCompile(`(?i)iphone|ipad|ipod`)
)

// DetectPlatform classifies a User-Agent header into exactly one platform.
func DetectPlatform(userAgent string) Platform {
	switch {
	case androidUA.MatchString(userAgent):
		return PlatformAndroid
	case iosUA.MatchString(userAgent):
		return PlatformIOS
	default:
		return PlatformOther
	}
}

func (p Platform) String() string {
	switch p {
	case PlatformAndroid:
		return "android"
	case PlatformIOS:
		return "ios"
	default:
		return "other"
	}
}
