package slug

import (
	"errors"
	"testing"
)

func TestCheck(t *testing.T) {
	tests := []struct {
		name    string
		slug    string
		wantErr error
	}{
		// Valid slugs
		{name: "single lowercase letter", slug: "a", wantErr: nil},
		{name: "single digit", slug: "5", wantErr: nil},
		{name: "simple word", slug: "drumline", wantErr: nil},
		{name: "with hyphens", slug: "test-show", wantErr: nil},
		{name: "digits and letters", slug: "led-drums-2", wantErr: nil},
		{name: "consecutive hyphens", slug: "my--show", wantErr: nil},
		{name: "leading hyphen", slug: "-show", wantErr: nil},
		{name: "trailing hyphen", slug: "show-", wantErr: nil},
		{name: "only a hyphen", slug: "-", wantErr: nil},

		// Format violations
		{name: "empty string", slug: "", wantErr: ErrSlugFormat},
		{name: "uppercase letters", slug: "TestShow", wantErr: ErrSlugFormat},
		{name: "underscore and bang", slug: "Test_Show!", wantErr: ErrSlugFormat},
		{name: "contains spaces", slug: "test show", wantErr: ErrSlugFormat},
		{name: "contains underscore", slug: "test_show", wantErr: ErrSlugFormat},
		{name: "contains period", slug: "test.show", wantErr: ErrSlugFormat},
		{name: "contains slash", slug: "stage/show", wantErr: ErrSlugFormat},
		{name: "non-ascii letter", slug: "café-show", wantErr: ErrSlugFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Check(tt.slug)
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Check(%q) = %v, want nil", tt.slug, err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Check(%q) = %v, want %v", tt.slug, err, tt.wantErr)
			}
		})
	}
}

func TestDerive(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Test Show", "test-show"},
		{"Test_Show!", "test-show"},
		{"  LED  Drum   Line ", "led-drum-line"},
		{"--already-a-slug--", "already-a-slug"},
		{"Rock & Roll", "rock-roll"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		if got := Derive(tt.in); got != tt.want {
			t.Errorf("Derive(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
