package tui

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vndocs/govportal/internal/adapter"
	"github.com/vndocs/govportal/internal/device"
	"github.com/vndocs/govportal/internal/geoip"
	"github.com/vndocs/govportal/internal/logger"
	"github.com/vndocs/govportal/internal/mock"
	"github.com/vndocs/govportal/internal/service"
	"github.com/vndocs/govportal/models"
)

func newConsoleServices(t *testing.T, gw *mock.MockGateway, geo *mock.MockResolver) *Services {
	t.Helper()

	state := service.NewAppState(gw, geo, logger.Nop())
	return &Services{
		State:        state,
		Gateway:      gw,
		Geo:          geo,
		UploadBucket: "documents",
	}
}

func TestCmdConsoleLogin_BlockedDeviceRefusedBeforeCredentials(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	geo := mock.NewMockResolver(ctrl)

	blocked := models.DeviceInfo{
		ID:     device.ID("203.0.113.9"),
		IP:     "203.0.113.9",
		Status: models.DeviceBlocked,
	}
	raw, err := json.Marshal(blocked)
	require.NoError(t, err)

	geo.EXPECT().PublicIP(gomock.Any()).Return("203.0.113.9", nil)
	gw.EXPECT().GetOne(gomock.Any(), "devices", blocked.ID).Return(json.RawMessage(raw), nil)
	// No Login and no Upsert expectations: a blocked device is turned away
	// before credentials leave the portal and without its row being bumped.

	m := appModel{ctx: context.Background(), services: newConsoleServices(t, gw, geo)}
	msg := m.cmdConsoleLogin("admin", "secret")()

	loginMsg, ok := msg.(consoleLoginMsg)
	require.True(t, ok)
	assert.True(t, loginMsg.blocked)
	assert.NoError(t, loginMsg.err)
}

func TestCmdConsoleLogin_RegistersDeviceAfterLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	geo := mock.NewMockResolver(ctrl)

	geo.EXPECT().PublicIP(gomock.Any()).Return("203.0.113.9", nil)
	geo.EXPECT().Locate(gomock.Any()).Return(geoip.Location{
		IP: "203.0.113.9", Country: "Vietnam", City: "Hanoi", Region: "HN",
	}, nil)

	// Once for the gate, once while registering.
	gw.EXPECT().GetOne(gomock.Any(), "devices", gomock.Any()).
		Return(nil, adapter.ErrNotFound).Times(2)
	gw.EXPECT().GetOne(gomock.Any(), "settings", gomock.Any()).
		Return(nil, adapter.ErrNotFound).AnyTimes()
	gw.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, nil).AnyTimes()

	login := gw.EXPECT().Login(gomock.Any(), "admin", "secret").
		Return(models.Token{SignedString: "jwt", Username: "admin"}, nil)
	gw.EXPECT().Upsert(gomock.Any(), "devices", gomock.Any()).After(login).Return(nil)
	gw.EXPECT().Insert(gomock.Any(), "logs", gomock.Any()).Return(nil)

	m := appModel{ctx: context.Background(), services: newConsoleServices(t, gw, geo)}
	msg := m.cmdConsoleLogin("admin", "secret")()

	loginMsg, ok := msg.(consoleLoginMsg)
	require.True(t, ok)
	assert.False(t, loginMsg.blocked)
	assert.NoError(t, loginMsg.err)
}

func TestCmdConsoleLogin_UnresolvedIPStillReachesLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	geo := mock.NewMockResolver(ctrl)

	geo.EXPECT().PublicIP(gomock.Any()).Return("", assert.AnError)
	gw.EXPECT().Login(gomock.Any(), "admin", "wrong").
		Return(models.Token{}, adapter.ErrUnauthorized)

	m := appModel{ctx: context.Background(), services: newConsoleServices(t, gw, geo)}
	msg := m.cmdConsoleLogin("admin", "wrong")()

	loginMsg, ok := msg.(consoleLoginMsg)
	require.True(t, ok)
	assert.ErrorIs(t, loginMsg.err, adapter.ErrUnauthorized)
}
