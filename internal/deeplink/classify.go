package deeplink

import (
	"regexp"
	"strings"
)

var (
	digitsRE           = regexp.MustCompile(`^[0-9]{6,15}$`)
	telegramUsernameRE = regexp.MustCompile(`^\w{5,32}$`)
	instagramNameRE    = regexp.MustCompile(`^[A-Za-z0-9._]{1,30}$`)
	twitterStatusRE    = regexp.MustCompile(`/status/([0-9]+)`)
)

// Instagram path roots that are content, not profiles.
var instagramReserved = map[string]bool{
	"p": true, "reel": true, "reels": true, "tv": true,
	"explore": true, "stories": true, "accounts": true,
}

// Classify determines which known application a destination URL belongs to
// and extracts the fields its scheme builder needs. Classification is total:
// URLs that cannot be parsed, and hosts that match no rule, come back as
// GenericFields carrying only the original URL.
func Classify(raw string) Fields {
	dest, err := ParseDestination(raw)
	if err != nil {
		return GenericFields{URL: raw}
	}
	return classifyDestination(dest)
}

func classifyDestination(dest DestinationURL) Fields {
	if dest.Scheme == "mailto" {
		return classifyMailto(dest)
	}
	if f, ok := classifyGmailWeb(dest); ok {
		return f
	}

	host := dest.matchHost()

	// Order matters: first match wins. Several rules are deliberately broad
	// substring matches to tolerate regional and mobile subdomains.
	switch {
	case strings.Contains(host, "youtube.com") || host == "youtu.be":
		return YouTubeFields{VideoID: youTubeVideoID(dest), dest: dest}
	case host == "wa.me" || strings.Contains(host, "whatsapp.com"):
		return WhatsAppFields{Phone: whatsAppPhone(dest), Text: dest.query().Get("text"), dest: dest}
	case host == "t.me" || strings.Contains(host, "telegram.me") || strings.Contains(host, "telegram.org"):
		return TelegramFields{Username: telegramUsername(dest), dest: dest}
	case strings.Contains(host, "instagram.com"):
		return InstagramFields{Username: instagramUsername(dest), dest: dest}
	case strings.Contains(host, "amazon."):
		return AmazonFields{dest: dest}
	case strings.Contains(host, "twitter.com") || strings.Contains(host, "x.com"):
		return TwitterFields{StatusID: twitterStatusID(dest), dest: dest}
	case strings.Contains(host, "facebook.com"):
		return FacebookFields{dest: dest}
	}

	return GenericFields{URL: dest.Raw, dest: dest, parsed: true}
}

// classifyMailto decomposes a mailto URL into Gmail compose fields.
// The address is the opaque part of the URL; subject accepts the "su" alias.
func classifyMailto(dest DestinationURL) GmailFields {
	q := dest.query()

	to := dest.url.Opaque
	if to == "" {
		to = q.Get("to")
	}

	subject := q.Get("subject")
	if subject == "" {
		subject = q.Get("su")
	}

	return GmailFields{
		To:      to,
		Subject: subject,
		Body:    q.Get("body"),
		CC:      q.Get("cc"),
		BCC:     q.Get("bcc"),
	}
}

// classifyGmailWeb recognizes a Gmail web compose URL: host mail.google.com,
// a path under /mail/, and at least one compose marker parameter.
func classifyGmailWeb(dest DestinationURL) (GmailFields, bool) {
	path := dest.url.Path
	if dest.matchHost() != "mail.google.com" || (path != "/mail" && !strings.HasPrefix(path, "/mail/")) {
		return GmailFields{}, false
	}

	q := dest.query()
	if q.Get("view") != "cm" && q.Get("compose") != "1" && q.Get("fs") != "1" {
		return GmailFields{}, false
	}

	return GmailFields{
		To:      q.Get("to"),
		Subject: q.Get("su"),
		Body:    q.Get("body"),
		CC:      q.Get("cc"),
		BCC:     q.Get("bcc"),
	}, true
}

// youTubeVideoID extracts a video id from watch?v=, youtu.be short links,
// and /shorts/ or /embed/ paths.
func youTubeVideoID(dest DestinationURL) string {
	if v := dest.query().Get("v"); v != "" {
		return v
	}

	segs := dest.pathSegments()
	if dest.matchHost() == "youtu.be" && len(segs) > 0 {
		return segs[0]
	}
	if len(segs) >= 2 && (segs[0] == "shorts" || segs[0] == "embed") {
		return segs[1]
	}
	return ""
}

// whatsAppPhone extracts a phone number from the "phone" query parameter or
// a 6-15 digit path segment (wa.me/<digits>, /send/<digits>).
func whatsAppPhone(dest DestinationURL) string {
	if p := dest.query().Get("phone"); p != "" {
		return p
	}
	for _, seg := range dest.pathSegments() {
		if digitsRE.MatchString(seg) {
			return seg
		}
	}
	return ""
}

// telegramUsername returns the username only when the path is a single
// username-shaped segment. Joinchat and channel-id paths yield no username,
// so those links fall through to the web on iOS.
func telegramUsername(dest DestinationURL) string {
	segs := dest.pathSegments()
	if len(segs) == 1 && telegramUsernameRE.MatchString(segs[0]) {
		return segs[0]
	}
	return ""
}

// instagramUsername returns the username for profile paths. Post shortcodes
// are skipped: the instagram:// media deep link needs a numeric media id
// that is not derivable from a shortcode.
func instagramUsername(dest DestinationURL) string {
	segs := dest.pathSegments()
	if len(segs) == 1 && !instagramReserved[segs[0]] && instagramNameRE.MatchString(segs[0]) {
		return segs[0]
	}
	return ""
}

func twitterStatusID(dest DestinationURL) string {
	if m := twitterStatusRE.FindStringSubmatch(dest.url.Path); m != nil {
		return m[1]
	}
	return ""
}
