package http

import (
	"errors"
	"io"
	"net"
	"net/http"
	"strings"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/catalog"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/service"
	"github.com/go-chi/chi/v5"
)

const paymentProofField = "payment_proof"

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) Sitemap(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Sitemap.Current(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	w.Header().Set("Content-Type", "application/xml; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *Handler) SearchCatalog(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res := h.svc.Catalog.Search(r.Context(), q.Get("search"), func(defaults catalog.Criteria) catalog.Criteria {
		return ParseCriteria(q, defaults)
	})
	if h.metrics != nil {
		h.metrics.CatalogQueries.Inc()
		h.metrics.CatalogResults.Observe(float64(res.Count))
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *Handler) CatalogDefaults(w http.ResponseWriter, r *http.Request) {
	criteria, facets := h.svc.Catalog.Defaults(r.Context(), r.URL.Query().Get("search"))
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"criteria": criteria,
		"facets":   facets,
	})
}

func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	listings, err := h.svc.Catalog.Featured(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{"listings": listings})
}

func (h *Handler) Category(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Catalog.CategoryPage(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) DomainDetail(w http.ResponseWriter, r *http.Request) {
	detail, err := h.svc.Catalog.Detail(r.Context(), chi.URLParam(r, "name"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, detail)
}

type interestRequest struct {
	ViewDuration int `json:"view_duration"`
}

func (h *Handler) LogInterest(w http.ResponseWriter, r *http.Request) {
	var req interestRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, h.log, err)
			return
		}
	}
	if err := h.svc.Catalog.LogInterest(r.Context(), chi.URLParam(r, "name"), clientIP(r), req.ViewDuration); err != nil {
		writeError(w, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) MakeOffer(w http.ResponseWriter, r *http.Request) {
	var in service.OfferInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	lead, err := h.svc.Leads.MakeOffer(r.Context(), chi.URLParam(r, "name"), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.LeadsCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, lead)
}

func (h *Handler) SubmitTransfer(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxProofBytes+maxJSONBody)
	if err := r.ParseMultipartForm(h.maxProofBytes + maxJSONBody); err != nil {
		writeError(w, h.log, entity.NewValidationError("invalid multipart form: %v", err))
		return
	}
	in := service.TransferInput{
		DomainName: r.FormValue("domain_name"),
		BuyerName:  r.FormValue("full_name"),
		BuyerEmail: r.FormValue("email"),
		BuyerPhone: r.FormValue("phone"),
	}

	var proof *service.Attachment
	file, header, err := r.FormFile(paymentProofField)
	switch {
	case err == nil:
		defer file.Close()
		data, readErr := io.ReadAll(io.LimitReader(file, h.maxProofBytes+1))
		if readErr != nil {
			writeError(w, h.log, entity.NewValidationError("cannot read payment proof: %v", readErr))
			return
		}
		proof = &service.Attachment{FileName: header.Filename, Data: data}
	case errors.Is(err, http.ErrMissingFile):
	default:
		writeError(w, h.log, entity.NewValidationError("invalid payment proof: %v", err))
		return
	}

	t, err := h.svc.Transfers.Submit(r.Context(), in, proof)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.TransfersCreated.Inc()
	}
	writeJSON(w, http.StatusCreated, t)
}

func (h *Handler) SubmitContact(w http.ResponseWriter, r *http.Request) {
	var in service.ContactInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	msg, err := h.svc.Contact.Submit(r.Context(), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.MessagesReceived.Inc()
	}
	writeJSON(w, http.StatusCreated, msg)
}

func (h *Handler) Page(w http.ResponseWriter, r *http.Request) {
	page, err := h.svc.Pages.Get(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, page)
}

func (h *Handler) SiteFooter(w http.ResponseWriter, r *http.Request) {
	footer, err := h.svc.Site.Footer(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, footer)
}

func (h *Handler) CreateCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Cart.Create(r.Context())
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, cart)
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Cart.Get(r.Context(), chi.URLParam(r, "cartID"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

type addCartItemRequest struct {
	ListingID string `json:"listing_id"`
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	if strings.TrimSpace(req.ListingID) == "" {
		writeError(w, h.log, entity.NewValidationError("listing_id is required"))
		return
	}
	cart, err := h.svc.Cart.AddItem(r.Context(), chi.URLParam(r, "cartID"), req.ListingID)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	cart, err := h.svc.Cart.RemoveItem(r.Context(), chi.URLParam(r, "cartID"), chi.URLParam(r, "listingID"))
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, cart)
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var in service.CheckoutInput
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, h.log, err)
		return
	}
	res, err := h.svc.Cart.Checkout(r.Context(), chi.URLParam(r, "cartID"), in)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	if h.metrics != nil {
		h.metrics.OrdersCreated.WithLabelValues(service.OrderSourceCheckout).Add(float64(len(res.Orders)))
	}
	writeJSON(w, http.StatusCreated, res)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, h.log, err)
		return
	}
	token, err := h.svc.Auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, token)
}

// clientIP relies on chi's RealIP having rewritten RemoteAddr.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
