// mindsetctl 本机运维工具：查看统计、导出导入、重置、签发令牌。
// badger 存储同一时间只能被一个进程打开，运行前需停止服务。
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
