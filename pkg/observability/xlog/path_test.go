package xlog_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/omeyang/xlogfile/pkg/observability/xlog"
)

func TestDefaultFilePath(t *testing.T) {
	tests := []struct {
		name string
		at   time.Time
		want []string
	}{
		{"五月", time.Date(2024, 5, 20, 14, 30, 0, 0, time.Local), []string{"log", "2024", "05.log"}},
		{"十二月", time.Date(2025, 12, 31, 23, 59, 59, 0, time.Local), []string{"log", "2025", "12.log"}},
		{"一月", time.Date(2026, 1, 1, 0, 0, 0, 0, time.Local), []string{"log", "2026", "01.log"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			base := t.TempDir()
			got, err := xlog.DefaultFilePath(base, tt.at)
			if err != nil {
				t.Fatalf("DefaultFilePath() error: %v", err)
			}
			want := filepath.Join(append([]string{base}, tt.want...)...)
			if got != want {
				t.Errorf("DefaultFilePath() = %q, want %q", got, want)
			}

			info, err := os.Stat(filepath.Dir(want))
			if err != nil || !info.IsDir() {
				t.Errorf("year directory not created: %v", err)
			}
			if _, err := os.Stat(want); !os.IsNotExist(err) {
				t.Errorf("log file itself should not be created, stat err = %v", err)
			}
		})
	}
}

func TestFilePathForDoesNotCreateDirectories(t *testing.T) {
	base := t.TempDir()
	at := time.Date(2024, 5, 20, 14, 30, 0, 0, time.Local)

	got := xlog.FilePathFor(base, at)
	want := filepath.Join(base, "log", "2024", "05.log")
	if got != want {
		t.Errorf("FilePathFor() = %q, want %q", got, want)
	}
	if _, err := os.Stat(filepath.Join(base, "log")); !os.IsNotExist(err) {
		t.Errorf("log directory should not be created, stat err = %v", err)
	}

	created, err := xlog.DefaultFilePath(base, at)
	if err != nil {
		t.Fatalf("DefaultFilePath() error: %v", err)
	}
	if created != got {
		t.Errorf("DefaultFilePath() = %q, FilePathFor() = %q", created, got)
	}
}
