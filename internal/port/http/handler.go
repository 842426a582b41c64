package http

import (
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
)

// Services bundles everything the handlers call into.
type Services struct {
	Catalog   service.CatalogService
	Listings  service.ListingService
	Leads     service.LeadService
	Orders    service.OrderService
	Cart      service.CartService
	Transfers service.TransferService
	Contact   service.ContactService
	Pages     service.PageService
	Site      service.SiteService
	Migration service.MigrationService
	Sitemap   service.SitemapService
	Dashboard service.DashboardService
	Auth      service.AuthService
}

type Handler struct {
	svc           Services
	log           logger.Logger
	metrics       *metrics.Manager
	maxProofBytes int64
}

// NewHandler accepts a nil metrics manager.
func NewHandler(svc Services, m *metrics.Manager, maxProofBytes int64, log logger.Logger) *Handler {
	if maxProofBytes <= 0 {
		maxProofBytes = 10 << 20
	}
	return &Handler{svc: svc, log: log, metrics: m, maxProofBytes: maxProofBytes}
}
