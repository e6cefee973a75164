package main

import (
	"log"
	"time"

	"github.com/qlxz/couple-space/cmd"
	"github.com/qlxz/couple-space/config"
)

func init() {
	var cstZone = time.FixedZone("CST", 8*3600) // 东八
	time.Local = cstZone
}

func main() {
	log.Printf("couple-space %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
