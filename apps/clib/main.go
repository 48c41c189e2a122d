package main

import "C"
import (
	"log"
	"unsafe"

	"github.com/tutils/tcipher/cmd"
)

// RunCmd runs a tcipher command line and returns 0 on success, 1 on failure.
//
//export RunCmd
func RunCmd(cargs **C.char, size C.int) C.int {
	log.SetFlags(log.Ltime | log.Lshortfile)

	// 将 C 字符串数组转换为 Go []string
	args := make([]string, 0, int(size))
	for _, p := range unsafe.Slice(cargs, int(size)) {
		args = append(args, C.GoString(p))
	}
	if err := cmd.Run(args); err != nil {
		log.Println(err)
		return 1
	}
	return 0
}

func main() {} // 必须的空白主函数
