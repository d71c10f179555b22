package browser

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://example.com", false},
		{"http://example.com/article/abc123", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"ftp://example.com", true},
		{"", true},
	}

	for _, tt := range tests {
		err := Validate(tt.url)
		if tt.wantErr && err == nil {
			t.Errorf("Validate(%q): expected error, got nil", tt.url)
		}
		if !tt.wantErr && err != nil {
			t.Errorf("Validate(%q): unexpected error: %v", tt.url, err)
		}
	}
}
