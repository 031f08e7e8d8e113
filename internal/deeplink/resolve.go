package deeplink

// Descriptor is the resolver output: the three redirect artifacts plus the
// Chrome escape hatch. FallbackURL is always a plain http(s) URL (the Gmail
// case substitutes the web compose URL for the raw mailto), so the final
// step of any redirect sequence stays navigable by an ordinary browser.
type Descriptor struct {
	App              App    `json:"-"`
	AppName          string `json:"app"`
	IOSURL           string `json:"iosUrl,omitempty"`
	AndroidIntentURL string `json:"androidIntentUrl"`
	FallbackURL      string `json:"fallbackUrl"`
	ChromeURL        string `json:"chromeUrl"`
}

// newDescriptor fills the common descriptor shape: chromeUrl is always a
// fixed transform of fallbackUrl.
func newDescriptor(iosURL, androidIntentURL, fallbackURL string) Descriptor {
	return Descriptor{
		IOSURL:           iosURL,
		AndroidIntentURL: androidIntentURL,
		FallbackURL:      fallbackURL,
		ChromeURL:        chromeURL(fallbackURL),
	}
}

// Resolve classifies a destination URL and builds its redirect descriptor.
// It is a pure transform and total over validated destinations: unmatched
// and structurally unparseable URLs resolve through the generic builder.
func Resolve(raw string) Descriptor {
	fields := Classify(raw)
	d := fields.descriptor()
	d.App = fields.App()
	d.AppName = d.App.String()
	return d
}
