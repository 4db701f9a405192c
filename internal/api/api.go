package api

import (
	"net/http"

	callFlowHandler "ivr-server/internal/callflow/handler"
	dispatchHandler "ivr-server/internal/dispatch/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	appName         string
	callFlowHandler callFlowHandler.Handler
	dispatchHandler dispatchHandler.Handler
	webhookGuard    gin.HandlerFunc
}

// New creates the route set. webhookGuard runs in front of the Twilio webhook only.
func New(router *gin.RouterGroup, appName string, callFlowHandler callFlowHandler.Handler, dispatchHandler dispatchHandler.Handler, webhookGuard gin.HandlerFunc) API {
	return API{
		router:          router,
		appName:         appName,
		callFlowHandler: callFlowHandler,
		dispatchHandler: dispatchHandler,
		webhookGuard:    webhookGuard,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()

	appGroup := a.router.Group("/" + a.appName)
	{
		appGroup.GET("", a.callFlowHandler.HandleStatus)
		appGroup.POST("", a.webhookGuard, a.callFlowHandler.HandleWebhook)
		appGroup.POST("/dispatch", a.dispatchHandler.HandleDispatch)
	}
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
