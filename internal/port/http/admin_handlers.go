package http

import (
	"io"
	"mime"
	"net/http"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/port/http/middleware"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/go-chi/chi/v5"
)

const maxImportBody = 4 << 20

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Dashboard.Stats(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

func (h *Handler) ListDomains(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.Listings.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"listings": listings})
}

func (h *Handler) GetDomain(w http.ResponseWriter, r *http.Request) {
	l, err := h.svc.Listings.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) CreateDomain(w http.ResponseWriter, r *http.Request) {
	var in service.ListingInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	l, err := h.svc.Listings.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	h.log.Infof("Listing %s created by %s", l.Name, middleware.AdminEmail(r.Context()))
	writeJSON(w, http.StatusCreated, l)
}

func (h *Handler) UpdateDomain(w http.ResponseWriter, r *http.Request) {
	var in service.ListingInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	l, err := h.svc.Listings.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (h *Handler) DeleteDomain(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Listings.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type importRequest struct {
	Text string `json:"text"`
}

// ImportDomains accepts either a text/plain body or {"text": "..."}.
func (h *Handler) ImportDomains(w http.ResponseWriter, r *http.Request) {
	var text string
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if mediaType == "text/plain" {
		data, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxImportBody))
		if err != nil {
			writeError(w, h.log, entity.NewValidationError("cannot read import body: %v", err))
			return
		}
		text = string(data)
	} else {
		var req importRequest
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}
		text = req.Text
	}

	res, err := h.svc.Listings.BulkImport(r.Context(), text)
	if res != nil && h.metrics != nil {
		h.metrics.ListingsImported.Add(float64(res.Added))
	}
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) ListOffers(w http.ResponseWriter, r *http.Request) {
	leads, err := h.svc.Leads.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"offers": leads})
}

func (h *Handler) AcceptOffer(w http.ResponseWriter, r *http.Request) {
	order, err := h.svc.Leads.Accept(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.OrdersCreated.WithLabelValues(service.OrderSourceOffer).Inc()
	}
	writeJSON(w, http.StatusCreated, order)
}

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	params := repository.ListOrdersParams{
		Status:   entity.OrderStatus(q.Get("status")),
		Page:     intParam(q, "page", 1),
		PageSize: intParam(q, "page_size", 20),
		SortBy:   q.Get("sort_by"),
	}
	res, err := h.svc.Orders.List(r.Context(), params)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"orders":       res.Orders,
		"total_count":  res.TotalCount,
		"current_page": res.CurrentPage,
		"page_size":    res.PageSize,
		"total_pages":  res.TotalPages,
	})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.svc.Orders.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in service.OrderInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	o, err := h.svc.Orders.Create(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.OrdersCreated.WithLabelValues(service.OrderSourceAdmin).Inc()
	}
	writeJSON(w, http.StatusCreated, o)
}

func (h *Handler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	var in service.OrderInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	o, err := h.svc.Orders.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, o)
}

func (h *Handler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Orders.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Sales(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Orders.Sales(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

type statusRequest struct {
	Status     string `json:"status"`
	AdminNotes string `json:"admin_notes"`
}

func (h *Handler) ListMessages(w http.ResponseWriter, r *http.Request) {
	msgs, err := h.svc.Contact.List(r.Context(), entity.MessageStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"messages": msgs})
}

func (h *Handler) SetMessageStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if err := h.svc.Contact.SetStatus(r.Context(), chi.URLParam(r, "id"), entity.MessageStatus(req.Status)); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Contact.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListTransfers(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.Transfers.List(r.Context(), entity.TransferStatus(r.URL.Query().Get("status")))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"transfers": ts})
}

func (h *Handler) SetTransferStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	t, err := h.svc.Transfers.UpdateStatus(r.Context(), chi.URLParam(r, "id"), entity.TransferStatus(req.Status), req.AdminNotes)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, t)
}

func (h *Handler) DeleteTransfer(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Transfers.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) ListPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.svc.Pages.List(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"pages": pages})
}

func (h *Handler) CreatePage(w http.ResponseWriter, r *http.Request) {
	var p entity.PageSEO
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, h.log, err)
		return
	}
	created, err := h.svc.Pages.Create(r.Context(), &p)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdatePage(w http.ResponseWriter, r *http.Request) {
	var p entity.PageSEO
	if err := decodeJSON(w, r, &p); err != nil {
		writeError(w, h.log, err)
		return
	}
	updated, err := h.svc.Pages.Update(r.Context(), chi.URLParam(r, "id"), &p)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeletePage(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Pages.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Site.Settings(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

func (h *Handler) SaveSettings(w http.ResponseWriter, r *http.Request) {
	var s entity.SiteSettings
	if err := decodeJSON(w, r, &s); err != nil {
		writeError(w, h.log, err)
		return
	}
	saved, err := h.svc.Site.SaveSettings(r.Context(), &s)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) GetFooterContact(w http.ResponseWriter, r *http.Request) {
	c, err := h.svc.Site.FooterContact(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

func (h *Handler) SaveFooterContact(w http.ResponseWriter, r *http.Request) {
	var c entity.FooterContact
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, h.log, err)
		return
	}
	saved, err := h.svc.Site.SaveFooterContact(r.Context(), &c)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, saved)
}

func (h *Handler) ListSocialLinks(w http.ResponseWriter, r *http.Request) {
	links, err := h.svc.Site.SocialLinks(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"social_links": links})
}

func (h *Handler) CreateSocialLink(w http.ResponseWriter, r *http.Request) {
	var l entity.SocialLink
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, h.log, err)
		return
	}
	created, err := h.svc.Site.CreateSocialLink(r.Context(), &l)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (h *Handler) UpdateSocialLink(w http.ResponseWriter, r *http.Request) {
	var l entity.SocialLink
	if err := decodeJSON(w, r, &l); err != nil {
		writeError(w, h.log, err)
		return
	}
	updated, err := h.svc.Site.UpdateSocialLink(r.Context(), chi.URLParam(r, "id"), &l)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (h *Handler) DeleteSocialLink(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Site.DeleteSocialLink(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MigrateFooter(w http.ResponseWriter, r *http.Request) {
	report, err := h.svc.Migration.MigrateFooter(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (h *Handler) RefreshSitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Sitemap.Refresh(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"bytes": len(data)})
}
