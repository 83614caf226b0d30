package router

import (
	"github.com/donorhive/donorhive-server/internal/application"
	"github.com/donorhive/donorhive-server/internal/container"
	"github.com/donorhive/donorhive-server/internal/infrastructure/mongodb"
	handlers "github.com/donorhive/donorhive-server/internal/interface/http"
	"github.com/donorhive/donorhive-server/internal/router/modules"
)

// InitModules constructs every feature module from the container singletons
// and adds it to the registry. Call RegisterAll afterwards.
func InitModules(reg *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	db := container.GetMongo()
	jwt := container.GetJWT()

	users := mongodb.NewUserRepository(db)
	requests := mongodb.NewDonationRequestRepository(db)
	blogs := mongodb.NewBlogRepository(db)
	payments := mongodb.NewPaymentRepository(db)

	userSvc := application.NewUserService(users, logger, container.GetES(), cfg.ESDonorsIndex, container.GetRabbitPub(), container.GetGCS(), cfg.GCSBucket)
	donationSvc := application.NewDonationService(requests, users, container.GetRabbitPub(), logger)
	blogSvc := application.NewBlogService(blogs)
	paymentSvc := application.NewPaymentService(payments, container.GetStripe(), cfg.PaymentCurrency)
	statsSvc := application.NewStatsService(users, requests, payments)

	reg.Add(modules.NewHealthModule(cfg.DebugMetricsEnabled))
	reg.Add(modules.NewTokenModule(handlers.NewTokenHandler(jwt, logger)))
	reg.Add(modules.NewUserModule(handlers.NewUserHandler(userSvc, logger), users, jwt))
	reg.Add(modules.NewDonationModule(handlers.NewDonationHandler(donationSvc, logger)))
	reg.Add(modules.NewBlogModule(handlers.NewBlogHandler(blogSvc, logger), users, jwt))
	reg.Add(modules.NewPaymentModule(handlers.NewPaymentHandler(paymentSvc, logger), users, jwt))
	reg.Add(modules.NewStatsModule(handlers.NewStatsHandler(statsSvc, logger)))
}
