package ipv6bracket

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/miguelangel-nubla/ipv6bracket/pkg/nanoleaf"
	"github.com/miguelangel-nubla/ipv6bracket/pkg/registry"
)

const (
	// Marker is set on a constructor once its host argument is being rewritten.
	Marker = "ipv6-bracket"

	hostParam = "host"
)

// PatchNanoleaf installs the host rewriting wrapper on the nanoleaf constructor.
func PatchNanoleaf(reg *registry.Registry, logger *zap.SugaredLogger) bool {
	return Patch(reg, nanoleaf.Name, logger)
}

// Patch wraps the named constructor so its host argument goes through FormatHost.
// It is safe to call repeatedly: only the first successful call wraps. Failures are
// logged and reported as false, never returned.
func Patch(reg *registry.Registry, name string, logger *zap.SugaredLogger) (applied bool) {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	defer func() {
		if r := recover(); r != nil {
			logger.Errorw("failed to apply host patch",
				zap.String("constructor", name),
				zap.Error(fmt.Errorf("panic: %v", r)),
			)
			applied = false
		}
	}()

	if reg.Marked(name, Marker) {
		logger.Debugw("host patch already applied", zap.String("constructor", name))
		return false
	}

	applied, err := reg.Wrap(name, Marker, func(sig registry.Signature, original registry.Factory) registry.Factory {
		return hostRewriter(sig, original, logger)
	})
	if err != nil {
		logger.Errorw("failed to apply host patch",
			zap.String("constructor", name),
			zap.Error(err),
		)
		return false
	}
	if !applied {
		logger.Debugw("host patch already applied", zap.String("constructor", name))
		return false
	}

	logger.Infow("applied IPv6 URL bracket patch", zap.String("constructor", name))
	return true
}

func hostRewriter(sig registry.Signature, original registry.Factory, logger *zap.SugaredLogger) registry.Factory {
	rewriteHost := sig.Has(hostParam)

	return func(args registry.Args) (any, error) {
		bound, err := sig.Bind(args)
		if err != nil {
			// let the original constructor report what is missing
			logger.Debugw("binding constructor arguments", zap.Error(err))
			bound, err = sig.BindPartial(args)
			if err != nil {
				return original(args)
			}
		}
		bound.ApplyDefaults()

		if rewriteHost {
			if host, ok := bound.Arguments[hostParam].(string); ok && host != "" {
				bound.Arguments[hostParam] = FormatHost(host)
			}
		}

		return original(bound.Keywords())
	}
}
