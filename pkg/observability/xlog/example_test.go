package xlog_test

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/omeyang/xlogfile/pkg/observability/xlog"
)

func Example() {
	dir, err := os.MkdirTemp("", "xlog-example-*")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	at := time.Date(2024, 5, 20, 14, 30, 0, 0, time.Local)
	logger, cleanup, err := xlog.New().
		SetFile(filepath.Join(dir, "app.log")).
		SetLevel(xlog.LevelDebug).
		SetClock(func() time.Time { return at }).
		Build()
	if err != nil {
		fmt.Println("构建失败:", err)
		return
	}
	defer func() { _ = cleanup() }()

	logger.Trace("filtered")
	logger.Debug("cache warmed")
	logger.Warning("slow response")

	data, _ := os.ReadFile(logger.FilePath())
	fmt.Print(string(data))
	// Output:
	// 2024/05/20 14:30:00.000	[DEBUG]	cache warmed
	// 2024/05/20 14:30:00.000	[WARNING]	slow response
}

func ExampleDefaultFilePath() {
	dir, err := os.MkdirTemp("", "xlog-example-*")
	if err != nil {
		fmt.Println("创建临时目录失败:", err)
		return
	}
	defer func() { _ = os.RemoveAll(dir) }()

	path, err := xlog.DefaultFilePath(dir, time.Date(2024, 5, 20, 0, 0, 0, 0, time.Local))
	if err != nil {
		fmt.Println("失败:", err)
		return
	}
	rel, _ := filepath.Rel(dir, path)
	fmt.Println(rel)
	// Output: log/2024/05.log
}
