// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package main

import (
	"flag"
	"fmt"

	"VestiAI/app/api/wardrobe/internal/config"
	"VestiAI/app/api/wardrobe/internal/handler"
	"VestiAI/app/api/wardrobe/internal/svc"
	"VestiAI/app/common/response"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"
	"github.com/zeromicro/go-zero/rest/httpx"
)

var configFile = flag.String("f", "etc/wardrobe-api.yaml", "the config file")

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	server := rest.MustNewServer(c.RestConf, rest.WithCors(c.Cors.Origins...))
	defer server.Stop()

	ctx := svc.NewServiceContext(c)
	handler.RegisterHandlers(server, ctx)

	httpx.SetErrorHandlerCtx(response.ErrorHandler)

	if ctx.OrderEvents != nil {
		defer ctx.OrderEvents.Close()
	}
	if ctx.Tasks != nil {
		defer ctx.Tasks.Close()
	}

	fmt.Printf("Starting server at %s:%d...\n", c.Host, c.Port)
	server.Start()
}
