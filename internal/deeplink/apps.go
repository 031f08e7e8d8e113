package deeplink

import (
	"net/url"
	"strings"
)

// App identifies the native application a destination URL belongs to.
type App int

const (
	AppYouTube App = iota
	AppWhatsApp
	AppTelegram
	AppInstagram
	AppAmazon
	AppTwitter
	AppFacebook
	AppGmail
	AppGeneric
)

// Android package names for the known applications.
const (
	pkgYouTube   = "com.google.android.youtube"
	pkgWhatsApp  = "com.whatsapp"
	pkgTelegram  = "org.telegram.messenger"
	pkgInstagram = "com.instagram.android"
	pkgAmazon    = "com.amazon.mShop.android.shopping"
	pkgTwitter   = "com.twitter.android"
	pkgFacebook  = "com.facebook.katana"
	pkgGmail     = "com.google.android.gm"
)

func (a App) String() string {
	switch a {
	case AppYouTube:
		return "youtube"
	case AppWhatsApp:
		return "whatsapp"
	case AppTelegram:
		return "telegram"
	case AppInstagram:
		return "instagram"
	case AppAmazon:
		return "amazon"
	case AppTwitter:
		return "twitter"
	case AppFacebook:
		return "facebook"
	case AppGmail:
		return "gmail"
	default:
		return "generic"
	}
}

// Fields carries the values the classifier extracted for one application.
// The interface is sealed by the unexported descriptor method: every
// application is a concrete type in this package, and adding one means
// implementing both methods.
type Fields interface {
	App() App
	descriptor() Descriptor
}

// YouTubeFields holds an optional video id.
type YouTubeFields struct {
	VideoID string

	dest DestinationURL
}

func (YouTubeFields) App() App { return AppYouTube }

func (f YouTubeFields) descriptor() Descriptor {
	ios := "youtube://"
	hostPath := f.dest.hostPath()
	if f.VideoID != "" {
		// youtu.be and /shorts/ forms are normalized into a watch URL so the
		// intent opens the player directly.
		ios = "youtube://watch?v=" + f.VideoID
		hostPath = "www.youtube.com/watch?v=" + f.VideoID
	}
	return newDescriptor(ios, intentURL(hostPath, "https", pkgYouTube, f.dest.Raw), f.dest.Raw)
}

// WhatsAppFields holds an optional phone number and prefilled text.
type WhatsAppFields struct {
	Phone string
	Text  string

	dest DestinationURL
}

func (WhatsAppFields) App() App { return AppWhatsApp }

func (f WhatsAppFields) descriptor() Descriptor {
	send := "send" + encodeQuery(
		param{"phone", f.Phone},
		param{"text", f.Text},
	)
	return newDescriptor("whatsapp://"+send, intentURL(send, "whatsapp", pkgWhatsApp, f.dest.Raw), f.dest.Raw)
}

// TelegramFields holds a username when the path is a plain profile link.
type TelegramFields struct {
	Username string

	dest DestinationURL
}

func (TelegramFields) App() App { return AppTelegram }

func (f TelegramFields) descriptor() Descriptor {
	// Joinchat and channel-id links carry no username; they get no iOS
	// scheme and ride the web fallback instead.
	ios := ""
	if f.Username != "" {
		ios = "tg://resolve?domain=" + url.QueryEscape(f.Username)
	}
	return newDescriptor(ios, intentURL(f.dest.hostPath(), "https", pkgTelegram, f.dest.Raw), f.dest.Raw)
}

// InstagramFields holds a username for profile links.
type InstagramFields struct {
	Username string

	dest DestinationURL
}

func (InstagramFields) App() App { return AppInstagram }

func (f InstagramFields) descriptor() Descriptor {
	ios := "instagram://"
	if f.Username != "" {
		ios = "instagram://user?username=" + url.QueryEscape(f.Username)
	}
	return newDescriptor(ios, intentURL(f.dest.hostPath(), "https", pkgInstagram, f.dest.Raw), f.dest.Raw)
}

// AmazonFields carries no extracted values; the store app is opened at its
// front page with no path translation.
type AmazonFields struct {
	dest DestinationURL
}

func (AmazonFields) App() App { return AppAmazon }

func (f AmazonFields) descriptor() Descriptor {
	return newDescriptor("amazon://", intentURL(f.dest.hostPath(), "https", pkgAmazon, f.dest.Raw), f.dest.Raw)
}

// TwitterFields holds an optional tweet status id.
type TwitterFields struct {
	StatusID string

	dest DestinationURL
}

func (TwitterFields) App() App { return AppTwitter }

func (f TwitterFields) descriptor() Descriptor {
	ios := "twitter://"
	if f.StatusID != "" {
		ios = "twitter://status?id=" + f.StatusID
	}
	return newDescriptor(ios, intentURL(f.dest.hostPath(), "https", pkgTwitter, f.dest.Raw), f.dest.Raw)
}

// FacebookFields carries no extracted values.
type FacebookFields struct {
	dest DestinationURL
}

func (FacebookFields) App() App { return AppFacebook }

func (f FacebookFields) descriptor() Descriptor {
	return newDescriptor("fb://", intentURL(f.dest.hostPath(), "https", pkgFacebook, f.dest.Raw), f.dest.Raw)
}

// GmailFields holds the decomposed compose fields from a mailto address or a
// Gmail web compose URL.
type GmailFields struct {
	To      string
	Subject string
	Body    string
	CC      string
	BCC     string
}

func (GmailFields) App() App { return AppGmail }

func (f GmailFields) descriptor() Descriptor {
	// The browser fallback is the Gmail web compose URL, never the raw
	// mailto string: a custom scheme cannot terminate a fallback chain.
	web := f.webComposeURL()

	ios := "googlegmail:///co" + encodeQuery(
		param{"to", f.To},
		param{"subject", f.Subject},
		param{"body", f.Body},
		param{"cc", f.CC},
		param{"bcc", f.BCC},
	)

	composePath := f.To + encodeQuery(
		param{"subject", f.Subject},
		param{"body", f.Body},
		param{"cc", f.CC},
		param{"bcc", f.BCC},
	)

	return newDescriptor(ios, intentURL(composePath, "mailto", pkgGmail, web), web)
}

// webComposeURL builds the mail.google.com compose URL carrying the same
// fields, used as both the browser fallback and the Chrome escape hatch.
func (f GmailFields) webComposeURL() string {
	return "https://mail.google.com/mail/?view=cm&fs=1" + encodeQueryInto(
		param{"to", f.To},
		param{"su", f.Subject},
		param{"body", f.Body},
		param{"cc", f.CC},
		param{"bcc", f.BCC},
	)
}

// GenericFields is the catch-all for unrecognized applications. The OS gets
// a best-effort handoff with no package pin.
type GenericFields struct {
	URL string

	dest   DestinationURL
	parsed bool
}

func (GenericFields) App() App { return AppGeneric }

func (f GenericFields) descriptor() Descriptor {
	scheme := "https"
	hostPath := f.URL
	if f.parsed {
		scheme = f.dest.Scheme
		hostPath = f.dest.hostPath()
	} else if rest, ok := cutScheme(f.URL); ok {
		scheme, hostPath = rest[0], rest[1]
	}
	return Descriptor{
		AndroidIntentURL: intentURL(hostPath, scheme, "", f.URL),
		FallbackURL:      f.URL,
		ChromeURL:        chromeURL(f.URL),
	}
}

// cutScheme splits "scheme://rest" for URLs that never parsed cleanly.
func cutScheme(raw string) ([2]string, bool) {
	scheme, rest, ok := strings.Cut(raw, "://")
	if !ok || scheme == "" {
		return [2]string{}, false
	}
	return [2]string{strings.ToLower(scheme), rest}, true
}

// param is a single query parameter; empty values are omitted from output.
type param struct {
	key   string
	value string
}

// encodeQuery renders non-empty params as "?k=v&k=v", preserving the given
// order (url.Values.Encode would sort keys alphabetically).
func encodeQuery(params ...param) string {
	q := encodeQueryInto(params...)
	if q == "" {
		return ""
	}
	return "?" + q[1:]
}

// encodeQueryInto renders non-empty params as "&k=v&k=v" for appending to an
// existing query string. Returns "" when every value is empty.
func encodeQueryInto(params ...param) string {
	var b strings.Builder
	for _, p := range params {
		if p.value == "" {
			continue
		}
		b.WriteString("&")
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(url.QueryEscape(p.value))
	}
	return b.String()
}
