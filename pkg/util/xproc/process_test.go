package xproc

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessName(t *testing.T) {
	ResetProcessName()
	t.Cleanup(ResetProcessName)

	name := ProcessName()
	assert.NotEmpty(t, name)
	assert.NotContains(t, name, string(os.PathSeparator))
}

// 注意：此测试修改包级变量与 os.Args，不可使用 t.Parallel()。
func TestProcessNameFallbackToArgs(t *testing.T) {
	restore := SetExecutableForTest(func() (string, error) { return "", errors.New("no exe") })
	defer restore()
	origArgs := os.Args
	defer func() { os.Args = origArgs }()
	t.Cleanup(ResetProcessName)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"绝对路径", []string{"/usr/bin/myapp"}, "myapp"},
		{"相对路径", []string{"./relative/path/app"}, "app"},
		{"空参数", nil, ""},
		{"空 arg0", []string{""}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ResetProcessName()
			os.Args = tt.args
			assert.Equal(t, tt.want, ProcessName())
		})
	}
}

func TestBaseDir(t *testing.T) {
	t.Run("可执行文件所在目录", func(t *testing.T) {
		tmpDir := t.TempDir()
		exe := filepath.Join(tmpDir, "app")
		require.NoError(t, os.WriteFile(exe, nil, 0o700))

		restore := SetExecutableForTest(func() (string, error) { return exe, nil })
		defer restore()

		want, err := filepath.EvalSymlinks(tmpDir)
		require.NoError(t, err)
		assert.Equal(t, want, BaseDir())
	})

	t.Run("回退到工作目录", func(t *testing.T) {
		restoreExe := SetExecutableForTest(func() (string, error) { return "", errors.New("no exe") })
		defer restoreExe()
		restoreWd := SetGetwdForTest(func() (string, error) { return "/srv/app", nil })
		defer restoreWd()

		assert.Equal(t, "/srv/app", BaseDir())
	})

	t.Run("全部失败返回当前目录", func(t *testing.T) {
		restoreExe := SetExecutableForTest(func() (string, error) { return "", errors.New("no exe") })
		defer restoreExe()
		restoreWd := SetGetwdForTest(func() (string, error) { return "", errors.New("no wd") })
		defer restoreWd()

		assert.Equal(t, ".", BaseDir())
	})
}
