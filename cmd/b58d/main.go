package main

import (
	"context"
	"flag"
	"time"

	"github.com/treeforest/easyb58/config"
	"github.com/treeforest/easyb58/internal/server"
	"github.com/treeforest/easyb58/pkg/graceful"
	log "github.com/treeforest/logger"
)

func main() {
	path := flag.String("conf", "", "config path")
	flag.Parse()

	conf, err := config.Load(*path)
	if err != nil {
		log.Fatal("load config failed: ", err)
	}
	if conf.Debug {
		log.SetLevel(log.DEBUG)
	}

	data, _ := conf.Marshal()
	log.Info("config:\n", string(data))

	srv := server.NewHttpServer(conf)
	go func() {
		if err := srv.Run(); err != nil {
			log.Fatal("http server run failed: ", err)
		}
	}()

	wait := time.Duration(conf.ShutdownWait) * time.Second
	err = graceful.Stop(wait, func(ctx context.Context) error {
		return srv.Shutdown(ctx)
	})
	if err != nil {
		log.Errorf("shutdown: %v", err)
	}
}
