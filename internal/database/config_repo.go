package database

import (
	"context"

	sq "github.com/Masterminds/squirrel"

	"github.com/diegoclair/morning-club-bot/internal/domain/contract"
	"github.com/diegoclair/morning-club-bot/internal/domain/entity"
)

// configRowID is the id of the single config row seeded by the migrations
const configRowID = 1

type configRepo struct {
	db dbConn
	sb sq.StatementBuilderType
}

func newConfigRepo(db dbConn, sb sq.StatementBuilderType) contract.ConfigRepo {
	return &configRepo{db: db, sb: sb}
}

func (r *configRepo) Get(ctx context.Context) (*entity.Config, error) {
	query, args, err := r.sb.
		Select("text_channel_id", "voice_channel_id").
		From("config").
		Where(sq.Eq{"id": configRowID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var cfg entity.Config
	if err := r.db.GetContext(ctx, &cfg, query, args...); err != nil {
		return nil, storeError("failed to get config", err)
	}
	return &cfg, nil
}

func (r *configRepo) SetTextChannel(ctx context.Context, channelID string) error {
	return r.set(ctx, "text_channel_id", channelID)
}

func (r *configRepo) SetVoiceChannel(ctx context.Context, channelID string) error {
	return r.set(ctx, "voice_channel_id", channelID)
}

func (r *configRepo) set(ctx context.Context, column, value string) error {
	query, args, err := r.sb.
		Update("config").
		Set(column, value).
		Where(sq.Eq{"id": configRowID}).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return storeError("failed to update config", err)
	}
	return nil
}
