// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/rh-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/rh-dashboard-api/internal/domain"
	"github.com/vfg2006/rh-dashboard-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

const snapshotTable = "report_snapshots"

type SnapshotRepository interface {
	GetLatest(reportType domain.ReportType) (*domain.MatrixSnapshot, error)
	Save(snapshot *domain.MatrixSnapshot) error
	NextSyncToken(reportType domain.ReportType) (int64, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

// GetLatest retorna o snapshot vigente do relatório, ou nil se nunca houve
// sincronização.
func (r *snapshotRepository) GetLatest(reportType domain.ReportType) (*domain.MatrixSnapshot, error) {
	queryBuilder := squirrel.
		Select(
			"id",
			"report_type",
			"sync_token",
			"matrix",
			"fetched_at",
		).
		From(snapshotTable).
		Where(squirrel.Eq{"report_type": string(reportType)}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(sqlQuery, args...)

	var (
		snapshot   domain.MatrixSnapshot
		reportName string
		rawMatrix  []byte
	)

	err = row.Scan(
		&snapshot.ID,
		&reportName,
		&snapshot.SyncToken,
		&rawMatrix,
		&snapshot.FetchedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao buscar o snapshot: %w", err)
	}

	snapshot.ReportType = domain.ReportType(reportName)

	if err := json.Unmarshal(rawMatrix, &snapshot.Matrix); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a matriz do snapshot: %w", err)
	}

	return &snapshot, nil
}

// Save grava o snapshot respeitando a supersessão por token: o upsert só
// substitui a linha vigente quando o token novo é maior. Uma tentativa de
// sincronização atrasada nunca sobrescreve uma mais nova.
func (r *snapshotRepository) Save(snapshot *domain.MatrixSnapshot) error {
	if snapshot.ID == "" {
		id, err := utils.GenerateID()
		if err != nil {
			return fmt.Errorf("erro ao gerar o ID do snapshot: %w", err)
		}
		snapshot.ID = id
	}

	if snapshot.FetchedAt.IsZero() {
		snapshot.FetchedAt = time.Now()
	}

	rawMatrix, err := json.Marshal(snapshot.Matrix)
	if err != nil {
		return fmt.Errorf("erro ao serializar a matriz: %w", err)
	}

	queryBuilder := squirrel.
		Insert(snapshotTable).
		Columns("id", "report_type", "sync_token", "matrix", "fetched_at").
		Values(snapshot.ID, string(snapshot.ReportType), snapshot.SyncToken, rawMatrix, snapshot.FetchedAt).
		Suffix(`ON CONFLICT (report_type) DO UPDATE
			SET sync_token = EXCLUDED.sync_token,
			    matrix = EXCLUDED.matrix,
			    fetched_at = EXCLUDED.fetched_at
			WHERE report_snapshots.sync_token < EXCLUDED.sync_token`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(sqlQuery, args...); err != nil {
		return fmt.Errorf("erro ao gravar o snapshot: %w", err)
	}

	return nil
}

// NextSyncToken reserva o próximo token de sincronização. Tokens vêm de uma
// sequência do banco e crescem de forma monotônica mesmo entre processos; a
// sequência é global, o que continua monotônico por relatório.
func (r *snapshotRepository) NextSyncToken(_ domain.ReportType) (int64, error) {
	row := r.conn.QueryRow("SELECT nextval('report_sync_token_seq')")

	var token int64
	if err := row.Scan(&token); err != nil {
		return 0, fmt.Errorf("erro ao reservar o token de sincronização: %w", err)
	}

	return token, nil
}
