package registry

import (
	"bytes"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

const fallbackRegistry = "Approved tags:\n* drums\n* led\nUsage rules:\n"

func TestSource_Load(t *testing.T) {
	dir := t.TempDir()
	onDisk := filepath.Join(dir, "tag-registry.md")
	if err := os.WriteFile(onDisk, []byte("Approved tags:\n* fire\nUsage rules:\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	missing := filepath.Join(dir, "missing.md")

	tests := []struct {
		name    string
		src     Source
		want    []string
		wantLog string
	}{
		{
			name: "file wins over fallback",
			src:  Source{Path: onDisk, Fallback: []byte(fallbackRegistry)},
			want: []string{"fire"},
		},
		{
			name: "missing file uses fallback",
			src:  Source{Path: missing, Fallback: []byte(fallbackRegistry)},
			want: []string{"drums", "led"},
		},
		{
			name:    "missing file without fallback fails closed",
			src:     Source{Path: missing},
			want:    []string{},
			wantLog: "error loading tag registry",
		},
		{
			name:    "unreadable path is not replaced",
			src:     Source{Path: dir, Fallback: []byte(fallbackRegistry)},
			want:    []string{},
			wantLog: "error loading tag registry",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			got := tt.src.Load(zerolog.New(&buf))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Load() = %#v, want %#v", got, tt.want)
			}
			if tt.wantLog != "" && !strings.Contains(buf.String(), tt.wantLog) {
				t.Errorf("log output = %q, want %q", buf.String(), tt.wantLog)
			}
		})
	}
}
