package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
)

// DonationModule wires the donation-request lifecycle. The surface is public;
// creation is gated on the requester's active status inside the service.
type DonationModule struct {
	Handler *handlers.DonationHandler
}

func NewDonationModule(h *handlers.DonationHandler) *DonationModule {
	return &DonationModule{Handler: h}
}

func (m *DonationModule) Register(rg *gin.RouterGroup) {
	rg.GET("/donation-requests", m.Handler.ListAll)
	rg.GET("/blood-donation-requests", m.Handler.ListPending)
	rg.GET("/donation-requests/:email", m.Handler.ListByRequester)

	rg.POST("/donation-request", m.Handler.Create)
	rg.GET("/donation-request/:id", m.Handler.Get)
	rg.PUT("/donation-request/:id", m.Handler.Replace)
	rg.PATCH("/donation-request/:id", m.Handler.Patch)
	rg.DELETE("/donation-request/:id", m.Handler.Delete)
}
