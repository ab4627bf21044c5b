package routes

import (
	"github.com/danielgtaylor/huma/v2"

	analyticshandler "github.com/sudhanshu-jha/portfolio-api/internal/http/v1/analytics"
	contacthandler "github.com/sudhanshu-jha/portfolio-api/internal/http/v1/contact"
	portfoliohandler "github.com/sudhanshu-jha/portfolio-api/internal/http/v1/portfolio"
	analyticssvc "github.com/sudhanshu-jha/portfolio-api/internal/service/analytics"
	contactsvc "github.com/sudhanshu-jha/portfolio-api/internal/service/contact"
	portfoliosvc "github.com/sudhanshu-jha/portfolio-api/internal/service/portfolio"
)

// Register wires all HTTP routes into the provided API router.
func Register(
	api huma.API,
	portfolioService portfoliosvc.Service,
	contactService contactsvc.Service,
	analyticsService analyticssvc.Service,
) {
	portfoliohandler.Register(api, portfolioService)
	contacthandler.Register(api, contactService)
	analyticshandler.Register(api, analyticsService)
}
