package app

import (
	"github.com/VladPetriv/currency_exchange/pkg/metrics"
	"github.com/fasthttp/router"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttpadaptor"
)

const metricsPath = "/metrics"

func newMetricsServer(gatherer prometheus.Gatherer) *fasthttp.Server {
	r := router.New()
	r.GET(metricsPath, fasthttpadaptor.NewFastHTTPHandler(metrics.Handler(gatherer)))

	return &fasthttp.Server{
		Handler: r.Handler,
		Name:    "currency-exchange-metrics",
	}
}
