package service

import (
	"context"
	"fmt"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/domain/entity"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/platform/logger"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
)

const recentLeadsLimit = 5

type DashboardStats struct {
	Domains         int64         `json:"domains"`
	Leads           int64         `json:"leads"`
	Orders          int64         `json:"orders"`
	CompletedOrders int64         `json:"completed_orders"`
	RecentLeads     []entity.Lead `json:"recent_leads"`
}

type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	listings repository.ListingRepository
	leads    repository.LeadRepository
	orders   repository.OrderRepository
	log      logger.Logger
}

func NewDashboardService(listings repository.ListingRepository, leads repository.LeadRepository, orders repository.OrderRepository, log logger.Logger) DashboardService {
	return &dashboardService{listings: listings, leads: leads, orders: orders, log: log}
}

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var (
		stats DashboardStats
		err   error
	)
	if stats.Domains, err = s.listings.Count(ctx); err != nil {
		return nil, fmt.Errorf("count domains: %w", err)
	}
	if stats.Leads, err = s.leads.Count(ctx); err != nil {
		return nil, fmt.Errorf("count leads: %w", err)
	}
	if stats.Orders, err = s.orders.Count(ctx, ""); err != nil {
		return nil, fmt.Errorf("count orders: %w", err)
	}
	if stats.CompletedOrders, err = s.orders.Count(ctx, entity.OrderStatusCompleted); err != nil {
		return nil, fmt.Errorf("count completed orders: %w", err)
	}
	if stats.RecentLeads, err = s.leads.Recent(ctx, recentLeadsLimit); err != nil {
		return nil, fmt.Errorf("recent leads: %w", err)
	}

	for i := range stats.RecentLeads {
		l := &stats.RecentLeads[i]
		if l.DomainName != "" {
			continue
		}
		if listing, err := s.listings.GetByID(ctx, l.DomainID); err == nil {
			l.DomainName = listing.Name
		} else {
			l.DomainName = "Unknown"
		}
	}
	return &stats, nil
}
