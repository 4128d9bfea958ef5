package xfile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEnsureDir(t *testing.T) {
	tmpDir := t.TempDir()

	tests := []struct {
		name     string
		filename string
	}{
		{name: "创建单层目录", filename: filepath.Join(tmpDir, "log", "app.log")},
		{name: "创建多层目录", filename: filepath.Join(tmpDir, "log", "2024", "05.log")},
		{name: "目录已存在", filename: filepath.Join(tmpDir, "app.log")},
		{name: "当前目录文件", filename: "app.log"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := EnsureDir(tt.filename); err != nil {
				t.Fatalf("EnsureDir() 意外错误: %v", err)
			}
			dir := filepath.Dir(tt.filename)
			info, err := os.Stat(dir)
			if err != nil {
				t.Fatalf("目录 %q 未被创建: %v", dir, err)
			}
			if !info.IsDir() {
				t.Errorf("%q 不是目录", dir)
			}
		})
	}
}

func TestEnsureDirWithPermErrors(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		perm     os.FileMode
		wantErr  error
	}{
		{name: "空路径", filename: "", perm: 0750, wantErr: ErrEmptyPath},
		{name: "空字节", filename: "a\x00/b.log", perm: 0750, wantErr: ErrNullByte},
		{name: "缺少所有者执行位", filename: "/tmp/x/b.log", perm: 0640, wantErr: ErrInvalidPerm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := EnsureDirWithPerm(tt.filename, tt.perm)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("EnsureDirWithPerm() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegularFileSize(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("文件不存在", func(t *testing.T) {
		size, ok, err := RegularFileSize(filepath.Join(tmpDir, "missing.log"))
		if err != nil || ok || size != 0 {
			t.Errorf("RegularFileSize() = (%d, %v, %v), want (0, false, nil)", size, ok, err)
		}
	})

	t.Run("普通文件", func(t *testing.T) {
		path := filepath.Join(tmpDir, "app.log")
		if err := os.WriteFile(path, []byte("12345"), 0600); err != nil {
			t.Fatal(err)
		}
		size, ok, err := RegularFileSize(path)
		if err != nil || !ok || size != 5 {
			t.Errorf("RegularFileSize() = (%d, %v, %v), want (5, true, nil)", size, ok, err)
		}
	})

	t.Run("目录", func(t *testing.T) {
		size, ok, err := RegularFileSize(tmpDir)
		if err != nil || ok || size != 0 {
			t.Errorf("RegularFileSize() = (%d, %v, %v), want (0, false, nil)", size, ok, err)
		}
	})
}
