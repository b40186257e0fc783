package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
	"github.com/zeromicro/go-zero/rest"

	"sui-tx-explainer/internal/config"
	"sui-tx-explainer/internal/handler"
	"sui-tx-explainer/internal/svc"
	"sui-tx-explainer/pkg/logger"
)

var configFile = flag.String("f", "etc/server.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.ServerConfig
	conf.MustLoad(*configFile, &c)

	logger.Init(c.LogConf.ToLogOption())
	defer logger.Sync()

	serviceContext, err := svc.NewServiceContext(c)
	if err != nil {
		panic(err)
	}
	defer serviceContext.Close()

	server := rest.MustNewServer(rest.RestConf{Host: c.Host, Port: c.Port})
	handler.RegisterHandlers(server, serviceContext)

	sg := zerosvc.NewServiceGroup()
	sg.Add(server)

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sig
		logx.Info("Shutting down services...")
		sg.Stop()
	}()

	logx.Infof("Starting explain server at %s:%d", c.Host, c.Port)
	sg.Start()
}
