package xfile_test

import (
	"fmt"

	"github.com/omeyang/xlogfile/pkg/util/xfile"
)

func ExampleSplitName() {
	dir, name, ext := xfile.SplitName("/var/log/2024/05.log")
	fmt.Println(dir, name, ext)
	// Output: /var/log/2024 05 .log
}

func ExampleSanitizePath() {
	path, err := xfile.SanitizePath("/var/log/./app.log")
	fmt.Println(path, err)
	// Output: /var/log/app.log <nil>
}
