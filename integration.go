package ipv6bracket

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/miguelangel-nubla/ipv6bracket/pkg/registry"
)

const Domain = "patch_nanoleaf"

// Component is the contract a host framework uses to load an integration.
type Component interface {
	// Domain returns the name the integration is configured under.
	Domain() string
	// Setup is called once with the global configuration.
	Setup(ctx context.Context, config Config) bool
	// SetupEntry is called for each configured entry.
	SetupEntry(ctx context.Context, entry Entry) bool
}

type Config map[string]any

type Entry struct {
	EntryID string
	Domain  string
	Title   string
	Data    map[string]any
}

func NewEntry(title string, data map[string]any) Entry {
	return Entry{
		EntryID: uuid.NewString(),
		Domain:  Domain,
		Title:   title,
		Data:    data,
	}
}

type Integration struct {
	logger   *zap.SugaredLogger
	registry *registry.Registry
}

var _ Component = (*Integration)(nil)

func NewIntegration(logger *zap.SugaredLogger, reg *registry.Registry) *Integration {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	if reg == nil {
		reg = registry.Default
	}
	return &Integration{
		logger:   logger,
		registry: reg,
	}
}

func (i *Integration) Domain() string {
	return Domain
}

// Setup always succeeds; a patch that can't be applied only gets logged.
func (i *Integration) Setup(ctx context.Context, config Config) bool {
	i.logger.Infow("setup running", zap.String("domain", Domain))
	PatchNanoleaf(i.registry, i.logger)
	return true
}

func (i *Integration) SetupEntry(ctx context.Context, entry Entry) bool {
	i.logger.Infow("setup entry running",
		zap.String("domain", Domain),
		zap.String("entry_id", entry.EntryID),
	)
	PatchNanoleaf(i.registry, i.logger)
	return true
}
