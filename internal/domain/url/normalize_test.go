package url

import (
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "http scheme unchanged",
			input: "http://example.com",
			want:  "http://example.com",
		},
		{
			name:  "https scheme unchanged",
			input: "https://example.com/x",
			want:  "https://example.com/x",
		},
		{
			name:  "custom scheme unchanged",
			input: "ftp://files.example.com",
			want:  "ftp://files.example.com",
		},
		{
			name:  "bare domain gets http",
			input: "example.com",
			want:  "http://example.com",
		},
		{
			name:  "domain with port and path gets http",
			input: "example.com:8080/docs",
			want:  "http://example.com:8080/docs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.input)
			if got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLooksLikeURL(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"empty", "", false},
		{"bare domain", "example.com", true},
		{"subdomain", "mail.google.com", true},
		{"trailing dot", "example.com.", true},
		{"http scheme", "http://example.com", true},
		{"https with path", "https://example.com/x?y=z", true},
		{"uppercase scheme", "HTTPS://EXAMPLE.COM", true},
		{"with port", "example.com:8080", true},
		{"with port and path", "192.168.1.1:3000/admin", true},
		{"single label", "localhost", false},
		{"single label with port", "localhost:8080", false},
		{"search query", "golang tips", false},
		{"command key", "g", false},
		{"command search", "g'golang", false},
		{"command path", "r/r/golang", false},
		{"ftp scheme", "ftp://example.com", false},
		{"space in path", "example.com/a b", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LooksLikeURL(tt.input); got != tt.want {
				t.Errorf("LooksLikeURL(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestExtractHost(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "", ""},
		{"simple", "https://example.com", "example.com"},
		{"port stripped", "http://example.com:8080/a", "example.com"},
		{"lower-cased", "https://Mail.Google.COM/inbox", "mail.google.com"},
		{"no scheme", "example.com", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExtractHost(tt.input); got != tt.want {
				t.Errorf("ExtractHost(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestOrigin(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"bare origin", "https://github.com", "https://github.com"},
		{"trailing slash dropped", "https://github.com/", "https://github.com"},
		{"path and query dropped", "https://www.google.com/search?q=x", "https://www.google.com"},
		{"port kept", "http://localhost:8080/admin", "http://localhost:8080"},
		{"not absolute", "example.com", "example.com"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Origin(tt.input); got != tt.want {
				t.Errorf("Origin(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestHostMatches(t *testing.T) {
	tests := []struct {
		name      string
		host      string
		candidate string
		want      bool
	}{
		{"equal", "google.com", "google.com", true},
		{"subdomain", "mail.google.com", "google.com", true},
		{"parent does not match child", "google.com", "mail.google.com", false},
		{"unrelated", "github.com", "google.com", false},
		{"empty host", "", "google.com", false},
		{"empty candidate", "google.com", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HostMatches(tt.host, tt.candidate); got != tt.want {
				t.Errorf("HostMatches(%q, %q) = %v, want %v", tt.host, tt.candidate, got, tt.want)
			}
		})
	}
}
