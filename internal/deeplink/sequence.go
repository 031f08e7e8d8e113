package deeplink

// Navigation delays for the timed fallback chain, in milliseconds. Neither
// Android nor iOS reports whether a custom-scheme navigation succeeded, so
// every later step is a blind timer that a successful app handoff simply
// outruns.
const (
	// Android: the intent mechanism handles "app present" silently; the
	// fallback navigation only visibly fires if the handoff failed.
	androidFallbackDelayMS = 1200

	// iOS: app scheme now, Chrome attempt after this delay.
	iosChromeDelayMS = 700
	// iOS: plain fallback this long after the Chrome attempt.
	iosFallbackGapMS = 900
)

// Step is one timed navigation attempt. DelayMS is measured from the start
// of the sequence, not from the previous step.
type Step struct {
	URL     string `json:"url"`
	DelayMS int    `json:"delayMs"`
}

// Plan is the ordered navigation sequence for one platform. Steps always end
// with the plain fallback URL; ChromeLink, when set, is rendered as a
// clickable escape hatch that is never auto-attempted.
type Plan struct {
	Platform Platform
	Steps    []Step
	// ChromeLink is only populated for desktop clients, where the Chrome
	// attempt is manual rather than part of the automatic chain.
	ChromeLink string
}

// PlanFor derives the redirect sequence for a platform from a descriptor.
// There is no cancellation: once issued, a later navigation supersedes any
// in-flight timers because the page is already unloading.
func PlanFor(platform Platform, d Descriptor) Plan {
	switch platform {
	case PlatformAndroid:
		return Plan{
			Platform: platform,
			Steps: []Step{
				{URL: d.AndroidIntentURL, DelayMS: 0},
				{URL: d.FallbackURL, DelayMS: androidFallbackDelayMS},
			},
		}
	case PlatformIOS:
		if d.IOSURL == "" {
			// No app scheme to try: go straight to Chrome, then fall back.
			return Plan{
				Platform: platform,
				Steps: []Step{
					{URL: d.ChromeURL, DelayMS: 0},
					{URL: d.FallbackURL, DelayMS: iosFallbackGapMS},
				},
			}
		}
		return Plan{
			Platform: platform,
			Steps: []Step{
				{URL: d.IOSURL, DelayMS: 0},
				{URL: d.ChromeURL, DelayMS: iosChromeDelayMS},
				{URL: d.FallbackURL, DelayMS: iosChromeDelayMS + iosFallbackGapMS},
			},
		}
	default:
		return Plan{
			Platform:   platform,
			Steps:      []Step{{URL: d.FallbackURL, DelayMS: 0}},
			ChromeLink: d.ChromeURL,
		}
	}
}
