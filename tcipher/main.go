package main

import (
	"log"

	"github.com/tutils/tcipher/cmd"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)
	cmd.Execute()
}
