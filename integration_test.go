package ipv6bracket

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap/zapcore"

	"github.com/miguelangel-nubla/ipv6bracket/pkg/nanoleaf"
	"github.com/miguelangel-nubla/ipv6bracket/pkg/registry"
)

func TestIntegrationSetup(t *testing.T) {
	reg := newNanoleafRegistry()
	logger, logs := newObservedLogger()
	integration := NewIntegration(logger, reg)

	assert.Equal(t, Domain, integration.Domain())
	assert.True(t, integration.Setup(context.Background(), Config{}))
	assert.True(t, integration.SetupEntry(context.Background(), NewEntry("Shapes", map[string]any{"host": "fe80::1%eth0"})))

	assert.True(t, reg.Marked(nanoleaf.Name, Marker))
	assert.Equal(t, 1, logs.FilterMessage("applied IPv6 URL bracket patch").Len())
	assert.Equal(t, 1, logs.FilterMessage("setup running").Len())
	assert.Equal(t, 1, logs.FilterMessage("setup entry running").Len())

	obj, err := reg.Create(nanoleaf.Name, registry.Positional(nil, "fe80::1%eth0", "abc"))
	assert.NoError(t, err)
	assert.Equal(t, "http://[fe80::1%25eth0]:16021/api/v1/abc", obj.(*nanoleaf.Nanoleaf).APIURL())
}

func TestIntegrationSetupWithoutLibrary(t *testing.T) {
	logger, logs := newObservedLogger()
	integration := NewIntegration(logger, registry.New())

	assert.True(t, integration.Setup(context.Background(), nil))
	assert.True(t, integration.SetupEntry(context.Background(), Entry{}))
	assert.Equal(t, 2, logs.FilterLevelExact(zapcore.ErrorLevel).Len())
}

func TestIntegrationDefaults(t *testing.T) {
	integration := NewIntegration(nil, nil)
	assert.Same(t, registry.Default, integration.registry)
	assert.NotNil(t, integration.logger)
}

func TestNewEntry(t *testing.T) {
	a := NewEntry("a", nil)
	b := NewEntry("b", nil)
	assert.Equal(t, Domain, a.Domain)
	assert.NotEmpty(t, a.EntryID)
	assert.NotEqual(t, a.EntryID, b.EntryID)
}
