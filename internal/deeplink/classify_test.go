package deeplink

import "testing"

func TestClassifyHostRules(t *testing.T) {
	tests := []struct {
		name string
		url  string
		app  App
	}{
		{"youtube watch", "https://youtube.com/watch?v=abc", AppYouTube},
		{"youtube www uppercase", "https://www.YouTube.com/watch?v=abc", AppYouTube},
		{"youtube mobile subdomain", "https://m.youtube.com/watch?v=abc", AppYouTube},
		{"youtu.be short link", "https://youtu.be/abc", AppYouTube},
		{"whatsapp wa.me", "https://wa.me/15551234567", AppWhatsApp},
		{"whatsapp api subdomain", "https://api.whatsapp.com/send?phone=1", AppWhatsApp},
		{"telegram t.me", "https://t.me/somebody", AppTelegram},
		{"telegram web", "https://web.telegram.org/k/", AppTelegram},
		{"instagram profile", "https://instagram.com/somebody", AppInstagram},
		{"amazon com", "https://amazon.com/dp/B000", AppAmazon},
		{"amazon regional", "https://www.amazon.co.uk/gp/cart", AppAmazon},
		{"twitter", "https://twitter.com/a/status/1", AppTwitter},
		{"x.com", "https://x.com/a/status/1", AppTwitter},
		{"facebook", "https://facebook.com/somepage", AppFacebook},
		{"facebook mobile", "https://m.facebook.com/somepage", AppFacebook},
		{"mailto", "mailto:a@b.com", AppGmail},
		{"gmail web compose", "https://mail.google.com/mail/?view=cm&to=a@b.com", AppGmail},
		{"gmail web without compose marker", "https://mail.google.com/mail/u/0/", AppGeneric},
		{"gmail path without trailing segment", "https://mail.google.com/mail?view=cm&to=a@b.com", AppGmail},
		{"mailbox path is not the mail app", "https://mail.google.com/mailbox?view=cm", AppGeneric},
		{"unknown host", "https://example.org/anything", AppGeneric},
		{"unparseable structure", "://not-a-url", AppGeneric},
		// Broad substring matches are preserved verbatim, false positives
		// included; tightening them would change observable behavior.
		{"amazon substring false positive", "https://notamazon.example", AppGeneric},
		{"amazon dot substring", "https://amazon.example", AppAmazon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.url).App()
			if got != tt.app {
				t.Errorf("Classify(%q).App() = %v, want %v", tt.url, got, tt.app)
			}
		})
	}
}

func TestClassifyYouTubeVideoID(t *testing.T) {
	tests := []struct {
		name string
		url  string
		id   string
	}{
		{"watch param", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts path", "https://youtube.com/shorts/abc123", "abc123"},
		{"embed path", "https://youtube.com/embed/abc123", "abc123"},
		{"channel page has no id", "https://youtube.com/@somechannel", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Classify(tt.url).(YouTubeFields)
			if !ok {
				t.Fatalf("Classify(%q) is not YouTubeFields", tt.url)
			}
			if f.VideoID != tt.id {
				t.Errorf("VideoID = %q, want %q", f.VideoID, tt.id)
			}
		})
	}
}

func TestClassifyWhatsAppPhone(t *testing.T) {
	tests := []struct {
		name  string
		url   string
		phone string
		text  string
	}{
		{"wa.me path digits", "https://wa.me/15551234567?text=hi", "15551234567", "hi"},
		{"phone query param", "https://api.whatsapp.com/send?phone=4915551234&text=hello", "4915551234", "hello"},
		{"send path segment", "https://whatsapp.com/send/15551234567", "15551234567", ""},
		{"too short segment ignored", "https://wa.me/12345", "", ""},
		{"too long segment ignored", "https://wa.me/1234567890123456", "", ""},
		{"no phone at all", "https://www.whatsapp.com/download", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Classify(tt.url).(WhatsAppFields)
			if !ok {
				t.Fatalf("Classify(%q) is not WhatsAppFields", tt.url)
			}
			if f.Phone != tt.phone {
				t.Errorf("Phone = %q, want %q", f.Phone, tt.phone)
			}
			if f.Text != tt.text {
				t.Errorf("Text = %q, want %q", f.Text, tt.text)
			}
		})
	}
}

func TestClassifyTelegramUsername(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		username string
	}{
		{"plain username", "https://t.me/somechannel123", "somechannel123"},
		{"trailing slash", "https://t.me/somechannel123/", "somechannel123"},
		{"joinchat path has no username", "https://t.me/joinchat/AbCdEf123", ""},
		{"too short", "https://t.me/abcd", ""},
		{"invite prefix", "https://t.me/+AbCdEf123", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Classify(tt.url).(TelegramFields)
			if !ok {
				t.Fatalf("Classify(%q) is not TelegramFields", tt.url)
			}
			if f.Username != tt.username {
				t.Errorf("Username = %q, want %q", f.Username, tt.username)
			}
		})
	}
}

func TestClassifyInstagramUsername(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		username string
	}{
		{"profile", "https://instagram.com/some.user", "some.user"},
		{"post shortcode is not a profile", "https://instagram.com/p/AbCdEf/", ""},
		{"reel is not a profile", "https://www.instagram.com/reel/AbCdEf/", ""},
		{"explore is reserved", "https://instagram.com/explore", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Classify(tt.url).(InstagramFields)
			if !ok {
				t.Fatalf("Classify(%q) is not InstagramFields", tt.url)
			}
			if f.Username != tt.username {
				t.Errorf("Username = %q, want %q", f.Username, tt.username)
			}
		})
	}
}

func TestClassifyMailto(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want GmailFields
	}{
		{
			"address with subject and body",
			"mailto:a@b.com?subject=Hi&body=Hello",
			GmailFields{To: "a@b.com", Subject: "Hi", Body: "Hello"},
		},
		{
			"su alias wins when subject absent",
			"mailto:a@b.com?su=Short",
			GmailFields{To: "a@b.com", Subject: "Short"},
		},
		{
			"subject beats su alias",
			"mailto:a@b.com?subject=Long&su=Short",
			GmailFields{To: "a@b.com", Subject: "Long"},
		},
		{
			"cc and bcc",
			"mailto:a@b.com?cc=c@d.com&bcc=e@f.com",
			GmailFields{To: "a@b.com", CC: "c@d.com", BCC: "e@f.com"},
		},
		{
			"bare address",
			"mailto:a@b.com",
			GmailFields{To: "a@b.com"},
		},
		{
			"to from query when address empty",
			"mailto:?to=a@b.com",
			GmailFields{To: "a@b.com"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, ok := Classify(tt.url).(GmailFields)
			if !ok {
				t.Fatalf("Classify(%q) is not GmailFields", tt.url)
			}
			if f != tt.want {
				t.Errorf("Classify(%q) = %+v, want %+v", tt.url, f, tt.want)
			}
		})
	}
}

func TestClassifyGmailWebCompose(t *testing.T) {
	f, ok := Classify("https://mail.google.com/mail/?view=cm&fs=1&to=a@b.com&su=Hi&body=Hello").(GmailFields)
	if !ok {
		t.Fatal("gmail web compose URL not classified as GmailFields")
	}
	want := GmailFields{To: "a@b.com", Subject: "Hi", Body: "Hello"}
	if f != want {
		t.Errorf("fields = %+v, want %+v", f, want)
	}
}

func TestParseDestinationSchemes(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"https", "https://example.com", false},
		{"http", "http://example.com", false},
		{"mailto", "mailto:a@b.com", false},
		{"uppercase scheme", "HTTPS://example.com", false},
		{"javascript", "javascript:alert(1)", true},
		{"ftp", "ftp://example.com", true},
		{"no scheme", "example.com", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseDestination(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseDestination(%q) err = %v, wantErr %v", tt.url, err, tt.wantErr)
			}
		})
	}
}
