package usecase_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/bnema/kiosk/internal/application/port"
	portmocks "github.com/bnema/kiosk/internal/application/port/mocks"
	"github.com/bnema/kiosk/internal/application/usecase"
	"github.com/bnema/kiosk/internal/domain/entity"
	"github.com/bnema/kiosk/internal/logging"
)

func testContext() context.Context {
	return logging.WithContext(context.Background(), zerolog.Nop())
}

func TestCapabilityResolver_CheckDoesNotPrompt(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	system.EXPECT().Check(mock.Anything, port.PlatformPermissionID("devices/camera")).
		Return(entity.GrantGranted, nil)

	resolver := usecase.NewCapabilityResolver(system)
	result := resolver.Check(ctx, entity.CapabilityCamera)

	assert.Equal(t, entity.GrantGranted, result.Status)
	assert.True(t, result.Granted)
	system.AssertNotCalled(t, "Request")
}

func TestCapabilityResolver_GrantedTracksStatus(t *testing.T) {
	// For all capabilities c: check(c).granted == (check(c).status == granted).
	ctx := testContext()

	for _, status := range []entity.GrantStatus{
		entity.GrantGranted, entity.GrantDenied, entity.GrantBlocked, entity.GrantUnknown,
	} {
		system := portmocks.NewMockSystemPermissions(t)
		system.EXPECT().Check(mock.Anything, mock.Anything).Return(status, nil)

		resolver := usecase.NewCapabilityResolver(system)
		for _, c := range entity.AllCapabilities() {
			result := resolver.Check(ctx, c)
			assert.Equal(t, result.Status == entity.GrantGranted, result.Granted,
				"capability %s status %s", c, status)
		}
	}
}

func TestCapabilityResolver_TransportFailureKeepsLastKnownStatus(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/microphone")).
		Return(entity.GrantDenied, nil).Once()
	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/microphone")).
		Return(entity.GrantUnknown, fmt.Errorf("dbus: connection closed")).Once()

	resolver := usecase.NewCapabilityResolver(system)

	first := resolver.Request(ctx, entity.CapabilityMicrophone)
	assert.Equal(t, entity.GrantDenied, first.Status)

	// The failed round-trip must not invent a status change.
	second := resolver.Request(ctx, entity.CapabilityMicrophone)
	assert.Equal(t, entity.GrantDenied, second.Status)
	assert.False(t, second.Granted)
}

func TestCapabilityResolver_TransportFailureWithNoHistoryIsUnknown(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	system.EXPECT().Check(mock.Anything, mock.Anything).
		Return(entity.GrantUnknown, fmt.Errorf("portal unavailable"))

	resolver := usecase.NewCapabilityResolver(system)
	result := resolver.Check(ctx, entity.CapabilityCamera)

	assert.Equal(t, entity.GrantUnknown, result.Status)
	assert.False(t, result.Granted)
}

func TestCapabilityResolver_RequestAllIssuesOneRequestPerCapability(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/camera")).
		Return(entity.GrantGranted, nil).Once()
	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/microphone")).
		Return(entity.GrantGranted, nil).Once()

	resolver := usecase.NewCapabilityResolver(system)
	aggregate := resolver.RequestAll(ctx)

	assert.True(t, aggregate.AllGranted)
	assert.Equal(t, entity.CapabilityCamera, aggregate.Camera.Capability)
	assert.Equal(t, entity.CapabilityMicrophone, aggregate.Microphone.Capability)
}

func TestCapabilityResolver_RequestAllAggregatesMixedOutcome(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/camera")).
		Return(entity.GrantBlocked, nil)
	system.EXPECT().Request(mock.Anything, port.PlatformPermissionID("devices/microphone")).
		Return(entity.GrantGranted, nil)

	resolver := usecase.NewCapabilityResolver(system)
	aggregate := resolver.RequestAll(ctx)

	assert.False(t, aggregate.AllGranted)
	assert.False(t, aggregate.Camera.Granted)
	assert.Equal(t, entity.GrantBlocked, aggregate.Camera.Status)
	assert.True(t, aggregate.Microphone.Granted)
	assert.Equal(t, entity.GrantGranted, aggregate.Microphone.Status)
}

func TestCapabilityResolver_UnknownCapabilityNeverHitsTheOS(t *testing.T) {
	ctx := testContext()
	system := portmocks.NewMockSystemPermissions(t)

	resolver := usecase.NewCapabilityResolver(system)
	result := resolver.Check(ctx, entity.Capability("clipboard"))

	assert.Equal(t, entity.GrantUnknown, result.Status)
	system.AssertNotCalled(t, "Check")
	system.AssertNotCalled(t, "Request")
}
