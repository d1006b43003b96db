package modules

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsModule exposes the prometheus scrape endpoint.
type MetricsModule struct{}

func NewMetrics() *MetricsModule {
	return &MetricsModule{}
}

func (m *MetricsModule) Register(rg *gin.RouterGroup) {
	rg.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
