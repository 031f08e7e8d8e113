package validation

import "testing"

func TestValidateSlug(t *testing.T) {
	tests := []struct {
		slug string
		want bool
	}{
		{"abc", true},
		{"a", true},
		{"my-link_2", true},
		{"UPPER", true},
		{"", false},
		{"has space", false},
		{"slash/slug", false},
		{"semi;colon", false},
		{"über", false},
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", true},  // 64 chars
		{"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa", false}, // 65 chars
	}

	for _, tt := range tests {
		if got := ValidateSlug(tt.slug); got != tt.want {
			t.Errorf("ValidateSlug(%q) = %v, want %v", tt.slug, got, tt.want)
		}
	}
}

func TestNormalizeSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"YouTube", "youtube"},
		{"  padded  ", "padded"},
		{"already-lower", "already-lower"},
	}

	for _, tt := range tests {
		if got := NormalizeSlug(tt.in); got != tt.want {
			t.Errorf("NormalizeSlug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestValidateDestination(t *testing.T) {
	tests := []struct {
		name string
		url  string
		ok   bool
	}{
		{"https", "https://example.org/page", true},
		{"http", "http://example.org", true},
		{"mailto opaque", "mailto:a@b.com?subject=Hi", true},
		{"mailto to param", "mailto:?to=a@b.com", true},
		{"empty", "", false},
		{"no host", "https://", false},
		{"javascript", "javascript:alert(1)", false},
		{"ftp", "ftp://example.com/file", false},
		{"custom scheme", "myapp://open", false},
		{"bare mailto", "mailto:", false},
		{"not a url", "%%%", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _ := ValidateDestination(tt.url)
			if ok != tt.ok {
				t.Errorf("ValidateDestination(%q) = %v, want %v", tt.url, ok, tt.ok)
			}
		})
	}
}
