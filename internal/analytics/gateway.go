package analytics

import (
	"context"

	"github.com/iliyamo/property-management/internal/model"
	"github.com/iliyamo/property-management/internal/repository"
)

// Gateway is the engine's only upstream dependency: four owner-scoped list
// operations. Implementations must honor the degrade-not-fail contract —
// an entity source that is not provisioned yet returns an empty collection,
// never an error the engine has to special-case.
type Gateway interface {
	ListProperties(ctx context.Context, ownerID uint64) ([]model.Property, error)
	ListContracts(ctx context.Context, ownerID uint64) ([]model.Contract, error)
	ListPayments(ctx context.Context, ownerID uint64) ([]model.Payment, error)
	ListMaintenanceRequests(ctx context.Context, ownerID uint64) ([]model.MaintenanceRequest, error)
}

// RepoGateway adapts the MySQL repositories to the Gateway interface. The
// repositories already map a missing table to an empty slice, so the
// adapter is a plain delegation.
type RepoGateway struct {
	Properties  *repository.PropertyRepo
	Contracts   *repository.ContractRepo
	Payments    *repository.PaymentRepo
	Maintenance *repository.MaintenanceRepo
}

// NewRepoGateway bundles the four repositories behind the Gateway interface
// and panics if any dependency is nil.
func NewRepoGateway(p *repository.PropertyRepo, c *repository.ContractRepo, pay *repository.PaymentRepo, m *repository.MaintenanceRepo) *RepoGateway {
	if p == nil || c == nil || pay == nil || m == nil {
		panic("nil repository passed to NewRepoGateway")
	}
	return &RepoGateway{Properties: p, Contracts: c, Payments: pay, Maintenance: m}
}

func (g *RepoGateway) ListProperties(ctx context.Context, ownerID uint64) ([]model.Property, error) {
	return g.Properties.ListByOwner(ctx, ownerID)
}

func (g *RepoGateway) ListContracts(ctx context.Context, ownerID uint64) ([]model.Contract, error) {
	return g.Contracts.ListByOwner(ctx, ownerID)
}

func (g *RepoGateway) ListPayments(ctx context.Context, ownerID uint64) ([]model.Payment, error) {
	return g.Payments.ListByOwner(ctx, ownerID)
}

func (g *RepoGateway) ListMaintenanceRequests(ctx context.Context, ownerID uint64) ([]model.MaintenanceRequest, error) {
	return g.Maintenance.ListByOwner(ctx, ownerID)
}
