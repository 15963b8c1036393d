package domain

import "time"

// MatrixSnapshot é a última matriz bruta sincronizada de uma fonte de
// relatório. O SyncToken cresce monotonicamente a cada tentativa de
// sincronização: uma gravação com token menor que o vigente perdeu a corrida
// para uma tentativa mais nova e é descartada, nunca sobrescreve.
type MatrixSnapshot struct {
	ID         string          `json:"id"`
	ReportType ReportType      `json:"report_type"`
	SyncToken  int64           `json:"sync_token"`
	Matrix     [][]interface{} `json:"matrix"`
	FetchedAt  time.Time       `json:"fetched_at"`
}

// Fresh indica se o snapshot ainda está dentro do TTL do cache.
func (s *MatrixSnapshot) Fresh(ttl time.Duration, now time.Time) bool {
	if s == nil {
		return false
	}

	return now.Sub(s.FetchedAt) <= ttl
}
