package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	retry "github.com/avast/retry-go/v5"
	"github.com/urfave/cli/v3"

	"github.com/omeyang/xlogfile/pkg/observability/xlog"
	"github.com/omeyang/xlogfile/pkg/observability/xrotate"
	"github.com/omeyang/xlogfile/pkg/util/xfile"
	"github.com/omeyang/xlogfile/pkg/util/xproc"
)

// maxLineSize 从标准输入读取的单行上限
const maxLineSize = 1024 * 1024

// maxRetries rotate --retries 的上限
const maxRetries = 100

// globalFlags 全局选项，子命令共享。
func globalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "file",
			Aliases: []string{"f"},
			Usage:   "日志文件路径（默认 <基准目录>/log/<yyyy>/<MM>.log）",
			Sources: cli.EnvVars("XLOG_FILE"),
		},
		&cli.StringFlag{
			Name:    "base-dir",
			Usage:   "默认路径的基准目录（默认为程序所在目录）",
			Sources: cli.EnvVars("XLOG_BASE_DIR"),
		},
		&cli.Int64Flag{
			Name:    "rotate-size",
			Aliases: []string{"r"},
			Usage:   "轮转阈值（字节），文件大小严格大于该值时轮转",
			Value:   xlog.DefaultRotateSize,
			Sources: cli.EnvVars("XLOG_ROTATE_SIZE"),
		},
		&cli.StringFlag{
			Name:    "level",
			Aliases: []string{"l"},
			Usage:   "最低输出级别 (trace/debug/info/warning/error/fatal)",
			Value:   "info",
			Sources: cli.EnvVars("XLOG_LEVEL"),
		},
	}
}

// createCommands 创建所有子命令。
func createCommands(s streams) []*cli.Command {
	return []*cli.Command{
		createWriteCommand(s),
		createCheckCommand(s),
		createRotateCommand(s),
		createPathCommand(s),
	}
}

// createWriteCommand 创建 write 子命令。
func createWriteCommand(s streams) *cli.Command {
	return &cli.Command{
		Name:      "write",
		Usage:     "写入日志（无参数时逐行读取标准输入）",
		ArgsUsage: "[消息...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "as",
				Usage: "消息级别",
				Value: "info",
			},
			&cli.BoolFlag{
				Name:  "rotate-each-write",
				Usage: "每次写入前检查轮转（默认只在启动时检查）",
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			level, err := xlog.ParseLevel(cmd.String("as"))
			if err != nil {
				return &usageError{err: err}
			}
			minLevel, err := xlog.ParseLevel(cmd.String("level"))
			if err != nil {
				return &usageError{err: err}
			}
			path, err := resolvePath(cmd)
			if err != nil {
				return err
			}

			logger, cleanup, err := xlog.New().
				SetFile(path).
				SetRotateSize(cmd.Int64("rotate-size")).
				SetRotateEachWrite(cmd.Bool("rotate-each-write")).
				SetLevel(minLevel).
				SetOnError(func(err error) { fmt.Fprintf(s.err, "xlogctl: %v\n", err) }).
				Build()
			if err != nil {
				return asUsageError(err)
			}
			defer func() { _ = cleanup() }()

			if args := cmd.Args().Slice(); len(args) > 0 {
				logAt(logger, level, strings.Join(args, " "))
				return nil
			}
			return writeLines(ctx, logger, level, s)
		},
	}
}

// writeLines 把标准输入的每一行作为一条消息写入。
func writeLines(ctx context.Context, logger xlog.Logger, level xlog.Level, s streams) error {
	scanner := bufio.NewScanner(s.in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		logAt(logger, level, scanner.Text())
	}
	return scanner.Err()
}

// logAt 按级别调用对应的日志方法。
func logAt(logger xlog.Logger, level xlog.Level, msg string) {
	switch {
	case level <= xlog.LevelTrace:
		logger.Trace(msg)
	case level <= xlog.LevelDebug:
		logger.Debug(msg)
	case level <= xlog.LevelInfo:
		logger.Info(msg)
	case level <= xlog.LevelWarning:
		logger.Warning(msg)
	case level <= xlog.LevelError:
		logger.Error(msg)
	default:
		logger.Fatal(msg)
	}
}

// createCheckCommand 创建 check 子命令。
func createCheckCommand(s streams) *cli.Command {
	return &cli.Command{
		Name:         "check",
		Usage:        "执行一次轮转检查",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			size := cmd.Int64("rotate-size")
			if size <= 0 {
				return &usageError{err: fmt.Errorf("%w: got %d", xrotate.ErrInvalidMaxSize, size)}
			}
			path, err := resolvePath(cmd)
			if err != nil {
				return err
			}

			backup, err := xrotate.MaybeRotate(path, size, time.Now())
			if err != nil {
				return err
			}
			if backup == "" {
				fmt.Fprintf(s.out, "%s: no rotation needed\n", path)
				return nil
			}
			fmt.Fprintf(s.out, "%s -> %s\n", path, backup)
			return nil
		},
	}
}

// createRotateCommand 创建 rotate 子命令。
func createRotateCommand(s streams) *cli.Command {
	return &cli.Command{
		Name:  "rotate",
		Usage: "强制轮转当前文件",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  "retries",
				Usage: fmt.Sprintf("备份名冲突（同一秒内重复轮转）时的重试次数（0~%d）", maxRetries),
			},
			&cli.DurationFlag{
				Name:  "retry-delay",
				Usage: "重试间隔，至少 1s 才能得到新的备份时间戳",
				Value: time.Second,
			},
		},
		OnUsageError: onUsageError,
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path, err := resolvePath(cmd)
			if err != nil {
				return err
			}
			return rotateWithRetry(ctx, path, cmd.Int64("rotate-size"),
				cmd.Uint("retries"), cmd.Duration("retry-delay"), s)
		},
	}
}

// rotateWithRetry 强制轮转 path；只有备份名冲突才重试，其他错误立即返回。
//
// 构造 Rotator 时的阈值检查可能已经完成轮转，此时 Rotate 对新的空文件是空操作。
func rotateWithRetry(ctx context.Context, path string, size int64, retries uint, delay time.Duration, s streams) error {
	if size <= 0 {
		return &usageError{err: fmt.Errorf("%w: got %d", xrotate.ErrInvalidMaxSize, size)}
	}
	if retries > maxRetries {
		return &usageError{err: fmt.Errorf("--retries must be at most %d, got %d", maxRetries, retries)}
	}

	return retry.New(
		retry.Context(ctx),
		retry.Attempts(retries+1),
		retry.Delay(delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, xrotate.ErrBackupExists)
		}),
		retry.OnRetry(func(n uint, err error) {
			fmt.Fprintf(s.err, "xlogctl: rotate attempt %d failed: %v\n", n+1, err)
		}),
	).Do(func() error {
		r, err := xrotate.NewFile(path, xrotate.WithMaxSize(size))
		if err != nil {
			return err
		}
		defer func() { _ = r.Close() }()
		if err := r.Rotate(); err != nil {
			return err
		}
		fmt.Fprintf(s.out, "%s rotated\n", path)
		return nil
	})
}

// createPathCommand 创建 path 子命令。
func createPathCommand(s streams) *cli.Command {
	return &cli.Command{
		Name:         "path",
		Usage:        "打印解析后的日志文件路径",
		OnUsageError: onUsageError,
		Action: func(_ context.Context, cmd *cli.Command) error {
			path, err := resolvePath(cmd)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, path)
			return nil
		},
	}
}

// resolvePath 根据 --file / --base-dir 解析并规范化日志文件路径。
//
// 不创建任何目录；需要写入的命令由 xlog / xrotate 在构造时创建父目录。
func resolvePath(cmd *cli.Command) (string, error) {
	path := cmd.String("file")
	if path == "" {
		baseDir := cmd.String("base-dir")
		if baseDir == "" {
			baseDir = xproc.BaseDir()
		}
		path = xlog.FilePathFor(baseDir, time.Now())
	}

	safePath, err := xfile.SanitizePath(path)
	if err != nil {
		return "", &usageError{err: err}
	}
	return safePath, nil
}

// asUsageError 把配置类错误归为参数错误，其余原样返回。
func asUsageError(err error) error {
	if errors.Is(err, xlog.ErrInvalidRotateSize) || errors.Is(err, xlog.ErrUnknownLevel) {
		return &usageError{err: err}
	}
	return err
}
