package scheduler

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ads-dashboard-api/internal/config"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding"
	"github.com/vfg2006/ads-dashboard-api/internal/usecases/dashboarding/mocks"
	"go.uber.org/mock/gomock"
)

func newTestService(session dashboarding.Dashboarder) *AutoRefreshService {
	cfg := &config.Config{}
	cfg.AutoRefresh.IntervalMinutes = 60

	return NewAutoRefreshService(session, cfg)
}

func TestRefreshDashboardForcesFetchWhenEnabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDashboarder(ctrl)
	session.EXPECT().AutoRefreshEnabled().Return(true)
	session.EXPECT().
		FetchAll(gomock.Any(), dashboarding.FetchOptions{ForceRefresh: true}).
		Return(nil)

	service := newTestService(session)
	service.refreshDashboard(context.Background())

	assert.False(t, service.lastRunCompletedAt.IsZero())
}

func TestRefreshDashboardSkipsWhenDisabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDashboarder(ctrl)
	session.EXPECT().AutoRefreshEnabled().Return(false)

	service := newTestService(session)
	service.refreshDashboard(context.Background())

	assert.True(t, service.lastRunStartedAt.IsZero())
}

func TestGetStatusConcurrentWithRefresh(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDashboarder(ctrl)
	session.EXPECT().AutoRefreshEnabled().Return(true).AnyTimes()
	session.EXPECT().
		FetchAll(gomock.Any(), dashboarding.FetchOptions{ForceRefresh: true}).
		Return(nil).
		AnyTimes()

	service := newTestService(session)

	// Ciclos de refresh e leituras de status disputam os carimbos de horário;
	// o detector de corrida acusa qualquer acesso sem o mutex
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			service.refreshDashboard(context.Background())
		}()
		go func() {
			defer wg.Done()
			_ = service.GetStatus()
		}()
	}
	wg.Wait()

	status := service.GetStatus()
	startedAt, ok := status["last_run_started_at"].(time.Time)
	assert.True(t, ok)
	assert.False(t, startedAt.IsZero())
}

func TestGetStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	session := mocks.NewMockDashboarder(ctrl)
	session.EXPECT().AutoRefreshEnabled().Return(true)

	service := newTestService(session)
	status := service.GetStatus()

	assert.Equal(t, true, status["refresh_enabled"])
	assert.Equal(t, 60, status["interval_minutes"])
}
