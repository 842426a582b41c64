package http

import (
	"net/http"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/metrics"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/http/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

// NewRouter wires public and admin routes. m may be nil.
func NewRouter(h *Handler, m *metrics.Manager, log logger.Logger) http.Handler {
	mux := chi.NewRouter()

	mux.Use(chimw.RequestID)
	mux.Use(chimw.RealIP)
	mux.Use(middleware.Tracing)
	mux.Use(middleware.RequestLogger(log))
	if m != nil {
		mux.Use(middleware.Metrics(m))
	}
	mux.Use(middleware.Recoverer(log))
	mux.Use(chimw.Timeout(requestTimeout))

	mux.Get("/healthz", h.Health)
	mux.Get("/sitemap.xml", h.Sitemap)

	mux.Route("/api", func(r chi.Router) {
		r.Get("/catalog", h.SearchCatalog)
		r.Get("/catalog/defaults", h.CatalogDefaults)
		r.Get("/catalog/featured", h.Featured)
		r.Get("/categories/{slug}", h.Category)

		r.Get("/domains/{name}", h.DomainDetail)
		r.Post("/domains/{name}/interest", h.LogInterest)
		r.Post("/domains/{name}/offers", h.MakeOffer)

		r.Post("/transfers", h.SubmitTransfer)
		r.Post("/contact", h.SubmitContact)
		r.Get("/pages/{slug}", h.Page)
		r.Get("/site", h.SiteFooter)

		r.Post("/cart", h.CreateCart)
		r.Get("/cart/{cartID}", h.GetCart)
		r.Post("/cart/{cartID}/items", h.AddCartItem)
		r.Delete("/cart/{cartID}/items/{listingID}", h.RemoveCartItem)
		r.Post("/cart/{cartID}/checkout", h.Checkout)

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", h.Login)

			r.Group(func(r chi.Router) {
				r.Use(middleware.JWTAuth(h.svc.Auth))
				registerAdminRoutes(r, h)
			})
		})
	})

	return mux
}

func registerAdminRoutes(r chi.Router, h *Handler) {
	r.Get("/dashboard", h.Dashboard)

	r.Get("/domains", h.ListDomains)
	r.Post("/domains", h.CreateDomain)
	r.Post("/domains/import", h.ImportDomains)
	r.Get("/domains/{id}", h.GetDomain)
	r.Put("/domains/{id}", h.UpdateDomain)
	r.Delete("/domains/{id}", h.DeleteDomain)

	r.Get("/offers", h.ListOffers)
	r.Post("/offers/{id}/accept", h.AcceptOffer)

	r.Get("/orders", h.ListOrders)
	r.Post("/orders", h.CreateOrder)
	r.Get("/orders/{id}", h.GetOrder)
	r.Put("/orders/{id}", h.UpdateOrder)
	r.Delete("/orders/{id}", h.DeleteOrder)
	r.Get("/sales", h.Sales)

	r.Get("/messages", h.ListMessages)
	r.Patch("/messages/{id}", h.SetMessageStatus)
	r.Delete("/messages/{id}", h.DeleteMessage)

	r.Get("/transfers", h.ListTransfers)
	r.Patch("/transfers/{id}", h.SetTransferStatus)
	r.Delete("/transfers/{id}", h.DeleteTransfer)

	r.Get("/pages", h.ListPages)
	r.Post("/pages", h.CreatePage)
	r.Put("/pages/{id}", h.UpdatePage)
	r.Delete("/pages/{id}", h.DeletePage)

	r.Get("/settings", h.GetSettings)
	r.Put("/settings", h.SaveSettings)
	r.Get("/footer-contact", h.GetFooterContact)
	r.Put("/footer-contact", h.SaveFooterContact)

	r.Get("/social-links", h.ListSocialLinks)
	r.Post("/social-links", h.CreateSocialLink)
	r.Put("/social-links/{id}", h.UpdateSocialLink)
	r.Delete("/social-links/{id}", h.DeleteSocialLink)

	r.Post("/migrate/footer", h.MigrateFooter)
	r.Post("/sitemap/refresh", h.RefreshSitemap)
}
