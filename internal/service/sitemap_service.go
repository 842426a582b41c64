package service

import (
	"bytes"
	"context"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"github.com/beevik/etree"
)

const sitemapNamespace = "http://www.sitemaps.org/schemas/sitemap/0.9"

type sitemapEntry struct {
	Path       string
	LastMod    string
	ChangeFreq string
	Priority   string
}

var staticSitemapPages = []sitemapEntry{
	{Path: "/", LastMod: "2025-01-15", ChangeFreq: "weekly", Priority: "1.0"},
	{Path: "/marketplace", LastMod: "2025-01-15", ChangeFreq: "weekly", Priority: "0.9"},
	{Path: "/about", LastMod: "2024-12-01", ChangeFreq: "yearly", Priority: "0.5"},
	{Path: "/contact", LastMod: "2024-12-01", ChangeFreq: "yearly", Priority: "0.5"},
	{Path: "/terms", LastMod: "2024-11-01", ChangeFreq: "yearly", Priority: "0.2"},
	{Path: "/privacy", LastMod: "2024-11-01", ChangeFreq: "yearly", Priority: "0.2"},
	{Path: "/transfer", LastMod: "2025-01-10", ChangeFreq: "weekly", Priority: "0.5"},
}

type BlobWriter interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type SitemapService interface {
	// Current returns the last generated sitemap, building one on first use.
	Current(ctx context.Context) ([]byte, error)
	Refresh(ctx context.Context) ([]byte, error)
}

type sitemapService struct {
	listings  repository.ListingRepository
	store     BlobWriter
	objectKey string
	baseURL   string
	log       logger.Logger
	now       func() time.Time

	mu     sync.RWMutex
	cached []byte
}

// NewSitemapService renders sitemap.xml for baseURL. store may be nil; when set,
// every refresh is also written to objectKey.
func NewSitemapService(listings repository.ListingRepository, store BlobWriter, baseURL, objectKey string, log logger.Logger) SitemapService {
	return &sitemapService{
		listings:  listings,
		store:     store,
		objectKey: objectKey,
		baseURL:   strings.TrimRight(baseURL, "/"),
		log:       log,
		now:       time.Now,
	}
}

func (s *sitemapService) Current(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	cached := s.cached
	s.mu.RUnlock()
	if cached != nil {
		return cached, nil
	}
	return s.Refresh(ctx)
}

// Refresh lists available domains; a listing failure degrades to static pages only.
func (s *sitemapService) Refresh(ctx context.Context) ([]byte, error) {
	domains, err := s.listings.Find(ctx, repository.ListingQuery{Status: entity.ListingStatusAvailable})
	if err != nil {
		s.log.Errorf("Sitemap domain fetch failed: %v", err)
		domains = nil
	}

	data, err := s.render(domains)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cached = data
	s.mu.Unlock()

	if s.store != nil && s.objectKey != "" {
		if _, err := s.store.Put(ctx, s.objectKey, "application/xml", data); err != nil {
			s.log.Warnf("Failed to upload sitemap snapshot: %v", err)
		}
	}
	s.log.Debugf("Sitemap regenerated with %d domains", len(domains))
	return data, nil
}

func (s *sitemapService) render(domains []entity.Listing) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)
	urlset := doc.CreateElement("urlset")
	urlset.CreateAttr("xmlns", sitemapNamespace)

	for _, p := range staticSitemapPages {
		addURL(urlset, s.baseURL+p.Path, p)
	}
	for _, d := range domains {
		lastmod := d.LastModified()
		if lastmod.IsZero() {
			lastmod = s.now()
		}
		addURL(urlset, s.baseURL+"/domain/"+url.PathEscape(strings.TrimSpace(d.Name)), sitemapEntry{
			LastMod:    lastmod.UTC().Format(time.DateOnly),
			ChangeFreq: "weekly",
			Priority:   "0.8",
		})
	}

	doc.Indent(2)
	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("writing sitemap XML: %w", err)
	}
	return buf.Bytes(), nil
}

func addURL(parent *etree.Element, loc string, e sitemapEntry) {
	u := parent.CreateElement("url")
	u.CreateElement("loc").SetText(loc)
	u.CreateElement("lastmod").SetText(e.LastMod)
	u.CreateElement("changefreq").SetText(e.ChangeFreq)
	u.CreateElement("priority").SetText(e.Priority)
}
