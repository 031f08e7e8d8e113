package deeplink

import (
	"net/url"
	"strings"
)

// intentURL assembles an Android intent URL:
//
//	intent://<host-path>#Intent;scheme=<s>;package=<p>;S.browser_fallback_url=<enc>;end
//
// The grammar must stay byte-exact for OS compatibility. The package clause
// is omitted when pkg is empty (generic handoff with no package pin). The
// embedded fallback URL is what lets Android degrade to the browser when the
// target app is absent.
func intentURL(hostPath, scheme, pkg, fallback string) string {
	var b strings.Builder
	b.WriteString("intent://")
	b.WriteString(hostPath)
	b.WriteString("#Intent;scheme=")
	b.WriteString(scheme)
	if pkg != "" {
		b.WriteString(";package=")
		b.WriteString(pkg)
	}
	b.WriteString(";S.browser_fallback_url=")
	b.WriteString(url.QueryEscape(fallback))
	b.WriteString(";end")
	return b.String()
}

// chromeURL derives the Chrome escape-hatch URL from a fallback URL by
// swapping the http(s) prefix for the Chrome scheme token.
func chromeURL(fallback string) string {
	trimmed := strings.TrimPrefix(fallback, "https://")
	trimmed = strings.TrimPrefix(trimmed, "http://")
	return "googlechrome://" + trimmed
}
