package grants_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/grants"
)

func TestStore_DefaultsToUnknownForBothCapabilities(t *testing.T) {
	store := grants.NewStore()

	snapshot := store.Snapshot()
	assert.Len(t, snapshot, 2)
	assert.Equal(t, entity.GrantUnknown, snapshot[entity.CapabilityCamera])
	assert.Equal(t, entity.GrantUnknown, snapshot[entity.CapabilityMicrophone])
	assert.False(t, store.AllGranted())
}

func TestStore_SetResultUpdatesStatus(t *testing.T) {
	store := grants.NewStore()

	store.SetResult(entity.NewCapabilityResult(entity.CapabilityCamera, entity.GrantGranted))

	assert.Equal(t, entity.GrantGranted, store.Status(entity.CapabilityCamera))
	assert.Equal(t, entity.GrantUnknown, store.Status(entity.CapabilityMicrophone))
}

func TestStore_IgnoresUnrecognizedCapability(t *testing.T) {
	store := grants.NewStore()

	store.SetResult(entity.NewCapabilityResult("geolocation", entity.GrantGranted))

	assert.Len(t, store.Snapshot(), 2, "store must never grow a key the resolver does not recognize")
}

func TestStore_WritesAfterTeardownAreNoOps(t *testing.T) {
	store := grants.NewStore()
	store.Teardown()

	// A late resolver callback on an unmounted screen must not panic or write.
	assert.NotPanics(t, func() {
		store.SetResult(entity.NewCapabilityResult(entity.CapabilityCamera, entity.GrantGranted))
	})
	assert.Equal(t, entity.GrantUnknown, store.Status(entity.CapabilityCamera))
}

func TestStore_SnapshotIsACopy(t *testing.T) {
	store := grants.NewStore()

	snapshot := store.Snapshot()
	snapshot[entity.CapabilityCamera] = entity.GrantBlocked

	assert.Equal(t, entity.GrantUnknown, store.Status(entity.CapabilityCamera))
}

func TestStore_AllGranted(t *testing.T) {
	store := grants.NewStore()
	store.SetResult(entity.NewCapabilityResult(entity.CapabilityCamera, entity.GrantGranted))
	assert.False(t, store.AllGranted())

	store.SetResult(entity.NewCapabilityResult(entity.CapabilityMicrophone, entity.GrantGranted))
	assert.True(t, store.AllGranted())
}
