package xlog_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/omeyang/xlogfile/pkg/observability/xlog"
	"github.com/omeyang/xlogfile/pkg/observability/xrotate"
	"github.com/omeyang/xlogfile/pkg/util/xfile"
)

func TestBuilder_ConfigErrors(t *testing.T) {
	tests := []struct {
		name    string
		builder func(path string) *xlog.Builder
		wantErr error
	}{
		{
			name:    "轮转阈值为零",
			builder: func(p string) *xlog.Builder { return xlog.New().SetFile(p).SetRotateSize(0) },
			wantErr: xlog.ErrInvalidRotateSize,
		},
		{
			name:    "未知级别",
			builder: func(p string) *xlog.Builder { return xlog.New().SetFile(p).SetLevelString("loud") },
			wantErr: xlog.ErrUnknownLevel,
		},
		{
			name: "first-error-wins",
			builder: func(p string) *xlog.Builder {
				return xlog.New().SetFile(p).SetLevelString("loud").SetRotateSize(-1)
			},
			wantErr: xlog.ErrUnknownLevel,
		},
		{
			name:    "文件权限无效",
			builder: func(p string) *xlog.Builder { return xlog.New().SetFile(p).SetFileMode(os.ModeDir | 0o644) },
			wantErr: xrotate.ErrInvalidFileMode,
		},
		{
			name:    "目录路径",
			builder: func(string) *xlog.Builder { return xlog.New().SetFile("/var/log/") },
			wantErr: xfile.ErrInvalidPath,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "app.log")
			logger, cleanup, err := tt.builder(path).Build()
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Build() error = %v, want %v", err, tt.wantErr)
			}
			if logger != nil || cleanup != nil {
				t.Error("Build() should return nil logger and cleanup on error")
			}
		})
	}
}

func TestBuilder_SingleUse(t *testing.T) {
	b := xlog.New().SetFile(filepath.Join(t.TempDir(), "app.log"))
	_, cleanup, err := b.Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if _, _, err := b.Build(); !errors.Is(err, xlog.ErrBuilderUsed) {
		t.Errorf("second Build() error = %v, want ErrBuilderUsed", err)
	}
}

func TestBuilder_SetLevelString(t *testing.T) {
	logger, cleanup, err := xlog.New().
		SetFile(filepath.Join(t.TempDir(), "app.log")).
		SetLevelString("warning").
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if logger.GetLevel() != xlog.LevelWarning {
		t.Errorf("GetLevel() = %v, want WARNING", logger.GetLevel())
	}
}

func TestBuilder_DefaultPathUnderBaseDir(t *testing.T) {
	base := t.TempDir()
	at := time.Date(2024, 5, 20, 14, 30, 0, 0, time.Local)

	logger, cleanup, err := xlog.New().
		SetBaseDir(base).
		SetClock(func() time.Time { return at }).
		Build()
	if err != nil {
		t.Fatalf("Build() error: %v", err)
	}
	defer func() { _ = cleanup() }()

	want := filepath.Join(base, "log", "2024", "05.log")
	if logger.FilePath() != want {
		t.Errorf("FilePath() = %q, want %q", logger.FilePath(), want)
	}

	logger.Info("hello")
	if _, err := os.Stat(want); err != nil {
		t.Errorf("log file not created: %v", err)
	}
}

func TestBuilder_DefaultPathDirectoryFailure(t *testing.T) {
	base := t.TempDir()
	// log 是一个普通文件，无法在其下创建年份目录
	if err := os.WriteFile(filepath.Join(base, "log"), nil, 0o600); err != nil {
		t.Fatal(err)
	}

	_, _, err := xlog.New().SetBaseDir(base).Build()
	if err == nil {
		t.Fatal("Build() should fail when log directory cannot be created")
	}
}
