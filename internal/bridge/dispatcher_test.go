package bridge

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/npiesco/basalt/internal/appmeta"
)

func newTestDispatcher(t *testing.T, register func(*Registry)) (*Dispatcher, *Host) {
	t.Helper()
	host := &Host{Meta: appmeta.Metadata{Name: "Basalt", Version: "1.2.3"}}
	registry := NewRegistry()
	register(registry)
	return NewDispatcher(registry, host, zap.NewNop()), host
}

func versionHandler(host *Host, _ Args) (any, error) {
	return host.Meta.Version, nil
}

func TestDispatchAppVersion(t *testing.T) {
	d, host := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("app_version", versionHandler))
	})

	resp := d.Dispatch(Request{Name: "app_version", Args: Args{}})
	assert.True(t, resp.OK)
	assert.Equal(t, "1.2.3", resp.Value)
	assert.Empty(t, resp.Error)

	// Round-trip: dispatching must yield exactly what the handler
	// returns when called directly.
	direct, err := versionHandler(host, nil)
	require.NoError(t, err)
	assert.Equal(t, direct, resp.Value)
}

func TestDispatchIsDeterministic(t *testing.T) {
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("app_version", versionHandler))
	})

	first := d.Dispatch(Request{Name: "app_version"})
	second := d.Dispatch(Request{Name: "app_version"})
	assert.Equal(t, first.Value, second.Value)
}

func TestDispatchUnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("app_version", versionHandler))
	})

	resp := d.Dispatch(Request{Name: "does_not_exist", Args: Args{}})
	assert.False(t, resp.OK)
	assert.Nil(t, resp.Value)
	assert.Contains(t, resp.Error, "unknown command")
	assert.Contains(t, resp.Error, "does_not_exist")
}

func TestDispatchSurfacesHandlerError(t *testing.T) {
	handlerErr := errors.New("metadata store unavailable")
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("failing", func(_ *Host, _ Args) (any, error) {
			return nil, handlerErr
		}))
	})

	resp := d.Dispatch(Request{Name: "failing"})
	assert.False(t, resp.OK)
	assert.Equal(t, handlerErr.Error(), resp.Error)
}

func TestDispatchRecoversHandlerPanic(t *testing.T) {
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("panics", func(_ *Host, _ Args) (any, error) {
			panic("unexpected state")
		}))
		require.NoError(t, r.Register("app_version", versionHandler))
	})

	resp := d.Dispatch(Request{Name: "panics"})
	assert.False(t, resp.OK)
	assert.Contains(t, resp.Error, "handler panic")

	// The dispatcher must keep serving after a panic.
	resp = d.Dispatch(Request{Name: "app_version"})
	assert.True(t, resp.OK)
	assert.Equal(t, "1.2.3", resp.Value)
}

func TestDispatchAssignsInvocationID(t *testing.T) {
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("app_version", versionHandler))
	})

	resp := d.Dispatch(Request{Name: "app_version"})
	assert.NotEmpty(t, resp.ID)

	resp = d.Dispatch(Request{ID: "req-42", Name: "app_version"})
	assert.Equal(t, "req-42", resp.ID)
}

func TestDispatchPassesArgs(t *testing.T) {
	d, _ := newTestDispatcher(t, func(r *Registry) {
		require.NoError(t, r.Register("echo", func(_ *Host, args Args) (any, error) {
			return args.String("text", "fallback"), nil
		}))
	})

	resp := d.Dispatch(Request{Name: "echo", Args: Args{"text": "hello"}})
	assert.Equal(t, "hello", resp.Value)

	resp = d.Dispatch(Request{Name: "echo"})
	assert.Equal(t, "fallback", resp.Value)
}
