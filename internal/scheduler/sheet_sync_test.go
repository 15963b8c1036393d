package scheduler

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sourcedomain "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/domain"
	sourcemocks "github.com/vfg2006/rh-dashboard-api/infrastructure/integrator/sheetsource/mocks"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/repository/mocks"
	"github.com/vfg2006/rh-dashboard-api/internal/config"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func syncConfig() *config.Config {
	return &config.Config{
		SheetSync: config.SheetSync{
			CronSchedule: "0 */2 * * *",
			Enabled:      true,
		},
	}
}

func TestSheetSyncService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	matrix := sourcedomain.RawMatrix{
		{"ID", "Nome"},
		{"1", "Ana"},
	}

	mockSource := sourcemocks.NewMockSource(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	// O token é reservado antes da busca: é a posição desta tentativa na
	// corrida de sincronização
	gomock.InOrder(
		mockSnapshotRepo.EXPECT().
			NextSyncToken(domain.ReportHeadcount).
			Return(int64(5), nil),
		mockSource.EXPECT().
			FetchReport(gomock.Any(), domain.ReportHeadcount).
			Return(matrix, nil),
		mockSnapshotRepo.EXPECT().
			Save(gomock.Any()).
			DoAndReturn(func(snapshot *domain.MatrixSnapshot) error {
				assert.Equal(t, domain.ReportHeadcount, snapshot.ReportType)
				assert.Equal(t, int64(5), snapshot.SyncToken)
				assert.Equal(t, [][]interface{}(matrix), snapshot.Matrix)
				assert.False(t, snapshot.FetchedAt.IsZero())
				return nil
			}),
	)

	service := NewSheetSyncService(mockSource, mockSnapshotRepo, syncConfig())

	err := service.RunNow(context.Background(), domain.ReportHeadcount)
	require.NoError(t, err)
}

func TestSheetSyncService_RunNowFalhaDeFonte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSource(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	// O token reservado é queimado: a tentativa falha sem gravar nada e uma
	// tentativa posterior (com token maior) segue vencendo a corrida
	mockSnapshotRepo.EXPECT().
		NextSyncToken(domain.ReportDepartures).
		Return(int64(9), nil)
	mockSource.EXPECT().
		FetchReport(gomock.Any(), domain.ReportDepartures).
		Return(nil, errors.New("fonte fora do ar"))

	service := NewSheetSyncService(mockSource, mockSnapshotRepo, syncConfig())

	err := service.RunNow(context.Background(), domain.ReportDepartures)
	assert.Error(t, err)
}

func TestSheetSyncService_SyncAllReports(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSource := sourcemocks.NewMockSource(ctrl)
	mockSnapshotRepo := mocks.NewMockSnapshotRepository(ctrl)

	token := int64(0)
	for _, reportType := range domain.ReportTypes {
		reportType := reportType
		token++

		mockSnapshotRepo.EXPECT().
			NextSyncToken(reportType).
			Return(token, nil)

		if reportType == domain.ReportDepartures {
			// Uma fonte falha; as demais seguem sincronizando
			mockSource.EXPECT().
				FetchReport(gomock.Any(), reportType).
				Return(nil, errors.New("timeout"))
			continue
		}

		mockSource.EXPECT().
			FetchReport(gomock.Any(), reportType).
			Return(sourcedomain.RawMatrix{{"h"}, {"1"}}, nil)
		mockSnapshotRepo.EXPECT().
			Save(gomock.Any()).
			Return(nil)
	}

	service := NewSheetSyncService(mockSource, mockSnapshotRepo, syncConfig())
	service.syncAllReports(context.Background())

	status := service.Status()
	assert.False(t, status.Running)
	assert.Equal(t, 1, status.LastSyncErrors)
	require.NotNil(t, status.LastSyncStartedAt)
	require.NotNil(t, status.LastSyncCompletedAt)
	assert.False(t, status.LastSyncCompletedAt.Before(*status.LastSyncStartedAt))
}

func TestSheetSyncService_Status(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service := NewSheetSyncService(
		sourcemocks.NewMockSource(ctrl),
		mocks.NewMockSnapshotRepository(ctrl),
		syncConfig(),
	)

	status := service.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 */2 * * *", status.CronSchedule)
	assert.False(t, status.Running)
	assert.Nil(t, status.LastSyncStartedAt)
	assert.Nil(t, status.LastSyncCompletedAt)
}
