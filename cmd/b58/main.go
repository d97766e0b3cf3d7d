package main

import (
	"os"

	"github.com/treeforest/easyb58/config"
	"github.com/treeforest/easyb58/internal/command"
	log "github.com/treeforest/logger"
)

func main() {
	conf, err := config.Load(os.Getenv("EASYB58_CONFIG"))
	if err != nil {
		log.Fatal("load config failed: ", err)
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	command.Main(conf)
}
