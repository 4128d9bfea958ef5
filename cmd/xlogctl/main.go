// xlogctl 是 xlog 日志文件的命令行工具，供 shell 脚本写日志与维护日志文件。
//
// 用法:
//
//	xlogctl [全局选项] <命令> [命令参数]
//
// 全局选项（均可通过环境变量设置）:
//
//	-f, --file         日志文件路径（XLOG_FILE，默认 <基准目录>/log/<yyyy>/<MM>.log）
//	    --base-dir     默认路径的基准目录（XLOG_BASE_DIR，默认为程序所在目录）
//	-r, --rotate-size  轮转阈值，字节（XLOG_ROTATE_SIZE，默认 16777216）
//	-l, --level        最低输出级别（XLOG_LEVEL，默认 info）
//
// 命令:
//
//	write [消息...]    以 --as 指定的级别写入一条消息；没有参数时逐行读取标准输入
//	check              执行一次轮转检查（文件大小严格大于阈值时轮转）
//	rotate             强制轮转当前文件，备份名冲突时可按 --retries 重试
//	path               打印解析后的日志文件路径
//
// 退出码:
//
//	0: 成功
//	1: 执行失败（如轮转失败）
//	2: 参数错误
//
// 示例:
//
//	xlogctl write --as warning "disk usage above 90%"
//	tail -f app.out | xlogctl -f /var/log/app/app.log write
//	xlogctl -r 1048576 check
//	xlogctl rotate --retries 3
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

// 版本信息（可通过 -ldflags 注入）
var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
)

// usageError 表示参数错误，退出码 2。
type usageError struct {
	err error
}

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

// streams 命令使用的输入输出，测试中替换为缓冲区。
type streams struct {
	in  io.Reader
	out io.Writer
	err io.Writer
}

func main() {
	os.Exit(run(os.Args, streams{in: os.Stdin, out: os.Stdout, err: os.Stderr}))
}

// run 执行 CLI 并把错误映射为退出码。
func run(args []string, s streams) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := createApp(s).Run(ctx, args); err != nil {
		var usageErr *usageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(s.err, "参数错误: %v\n", usageErr)
			return 2
		}
		fmt.Fprintf(s.err, "错误: %v\n", err)
		return 1
	}
	return 0
}

// createApp 创建 CLI 应用。
func createApp(s streams) *cli.Command {
	return &cli.Command{
		Name:         "xlogctl",
		Usage:        "xlog 日志文件命令行工具",
		Version:      fmt.Sprintf("%s (commit: %s)", Version, GitCommit),
		Flags:        globalFlags(),
		Commands:     createCommands(s),
		Reader:       s.in,
		Writer:       s.out,
		ErrWriter:    s.err,
		OnUsageError: onUsageError,
		// 禁止 urfave/cli 直接调用 os.Exit，由 run() 统一处理退出码
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}
}

// onUsageError 把 flag 解析错误转换为 usageError（退出码 2）。
func onUsageError(_ context.Context, _ *cli.Command, err error, _ bool) error {
	return &usageError{err: err}
}
