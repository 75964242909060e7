package repository

import (
	"database/sql"
	"encoding/json"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ads-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

const (
	dashboardCacheTable = "dashboard_cache"

	// DashboardCacheKey é a chave fixa do registro único de cache do dashboard
	DashboardCacheKey = "dashboard"
)

// DashboardCacheRepository persiste o resultado do último fetch bem-sucedido.
// A leitura é consultiva: o orquestrador decide o que fazer com entradas
// vencidas. Entradas corrompidas ou vazias são tratadas como cache ausente.
type DashboardCacheRepository interface {
	Read() (*domain.CacheEntry, error)
	Write(entry *domain.CacheEntry) error
	Evict() error
}

type dashboardCacheRepository struct {
	conn *postgres.Connection
}

func NewDashboardCacheRepository(conn *postgres.Connection) DashboardCacheRepository {
	return &dashboardCacheRepository{
		conn: conn,
	}
}

func (r *dashboardCacheRepository) Read() (*domain.CacheEntry, error) {
	query, args, err := squirrel.
		Select("dc.payload, dc.time_range_label, dc.cached_at").
		From(dashboardCacheTable + " dc").
		Where(squirrel.Eq{"dc.cache_key": DashboardCacheKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, errors.Wrap(err, "erro ao construir a query de leitura do cache")
	}

	var payload []byte
	var label string
	var cachedAt time.Time

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&payload, &label, &cachedAt); err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, errors.Wrap(err, "erro ao ler a entrada de cache do dashboard")
	}

	entry := &domain.CacheEntry{}
	if err := json.Unmarshal(payload, entry); err != nil {
		// Cache corrompido equivale a cache ausente, não a erro fatal
		logrus.WithError(err).Warn("cache: entrada de cache ilegível, tratando como ausente")
		return nil, nil
	}

	entry.TimeRangeLabel = label
	entry.Timestamp = cachedAt

	if entry.IsEmpty() {
		return nil, nil
	}

	return entry, nil
}

func (r *dashboardCacheRepository) Write(entry *domain.CacheEntry) error {
	payload, err := json.Marshal(entry)
	if err != nil {
		return errors.Wrap(err, "erro ao serializar a entrada de cache")
	}

	query, args, err := squirrel.
		Insert(dashboardCacheTable).
		Columns("cache_key", "payload", "time_range_label", "cached_at", "updated_at").
		Values(DashboardCacheKey, payload, entry.TimeRangeLabel, entry.Timestamp, time.Now()).
		Suffix(`ON CONFLICT (cache_key) DO UPDATE SET
			payload = EXCLUDED.payload,
			time_range_label = EXCLUDED.time_range_label,
			cached_at = EXCLUDED.cached_at,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de escrita do cache")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao gravar a entrada de cache do dashboard")
	}

	return nil
}

func (r *dashboardCacheRepository) Evict() error {
	query, args, err := squirrel.
		Delete(dashboardCacheTable).
		Where(squirrel.Eq{"cache_key": DashboardCacheKey}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return errors.Wrap(err, "erro ao construir a query de remoção do cache")
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return errors.Wrap(err, "erro ao remover a entrada de cache do dashboard")
	}

	return nil
}
