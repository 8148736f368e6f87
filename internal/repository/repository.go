// Package repository stores links in PostgreSQL.
package repository

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"go.uber.org/zap"

	"github.com/atinyakov/useful-links/internal/models"
	"github.com/atinyakov/useful-links/internal/storage"
)

//go:embed migrations/*.sql
var migrations embed.FS

const table = "useful_links"

var columns = []string{"id", "title", "url", "description", "category", "author_id", "created_at"}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// InitDB opens the database, checks the connection and applies migrations.
func InitDB(ctx context.Context, dsn string, logger *zap.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping db: %w", err)
	}

	if err := Migrate(ctx, db, logger); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// Migrate applies every pending migration.
func Migrate(ctx context.Context, db *sql.DB, logger *zap.Logger) error {
	dir, err := fs.Sub(migrations, "migrations")
	if err != nil {
		return err
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, dir)
	if err != nil {
		return fmt.Errorf("goose provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		logger.Info("migration applied",
			zap.String("source", r.Source.Path),
			zap.Duration("duration", r.Duration),
		)
	}
	return nil
}

type LinkRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

func CreateLinkRepository(db *sql.DB, logger *zap.Logger) *LinkRepository {
	return &LinkRepository{
		db:     db,
		logger: logger,
	}
}

// Write inserts l. When the id or url is taken it returns the stored link
// together with storage.ErrConflict.
func (r *LinkRepository) Write(ctx context.Context, l models.UsefulLink) (*models.UsefulLink, error) {
	query, args, err := psql.Insert(table).
		Columns(columns...).
		Values(l.ID, l.Title, l.URL, l.Description, l.Category, l.AuthorID, l.CreatedAt).
		Suffix("ON CONFLICT DO NOTHING").
		ToSql()
	if err != nil {
		return nil, err
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Error("insert link", zap.Error(err))
		return nil, err
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, err
	}

	if n == 0 {
		existing, err := r.findOne(ctx, sq.Or{sq.Eq{"id": l.ID}, sq.Eq{"url": l.URL}})
		if err != nil {
			return nil, err
		}
		return existing, storage.ErrConflict
	}

	return &l, nil
}

// WriteAll inserts every link in one transaction.
func (r *LinkRepository) WriteAll(ctx context.Context, ls []models.UsefulLink) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, l := range ls {
		query, args, err := psql.Insert(table).
			Columns(columns...).
			Values(l.ID, l.Title, l.URL, l.Description, l.Category, l.AuthorID, l.CreatedAt).
			ToSql()
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			r.logger.Info("batch insert rolled back", zap.Error(err))

			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
				return storage.ErrConflict
			}
			return err
		}
	}

	return tx.Commit()
}

func (r *LinkRepository) Read(ctx context.Context) ([]models.UsefulLink, error) {
	return r.findMany(ctx, nil)
}

func (r *LinkRepository) FindByID(ctx context.Context, id string) (*models.UsefulLink, error) {
	return r.findOne(ctx, sq.Eq{"id": id})
}

func (r *LinkRepository) FindByAuthor(ctx context.Context, authorID string) ([]models.UsefulLink, error) {
	return r.findMany(ctx, sq.Eq{"author_id": authorID})
}

func (r *LinkRepository) FindByCategory(ctx context.Context, category string) ([]models.UsefulLink, error) {
	return r.findMany(ctx, sq.Eq{"category": category})
}

// DeleteBatch removes links matched by id and author in one transaction.
func (r *LinkRepository) DeleteBatch(ctx context.Context, ls []models.UsefulLink) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	for _, l := range ls {
		query, args, err := psql.Delete(table).
			Where(sq.Eq{"id": l.ID, "author_id": l.AuthorID}).
			ToSql()
		if err != nil {
			_ = tx.Rollback()
			return err
		}

		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			_ = tx.Rollback()
			return err
		}
	}

	return tx.Commit()
}

func (r *LinkRepository) GetStats(ctx context.Context) (*storage.Stats, error) {
	var stats storage.Stats

	row := r.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COUNT(DISTINCT NULLIF(author_id, '')) FROM useful_links;")
	if err := row.Scan(&stats.Links, &stats.Authors); err != nil {
		return nil, err
	}

	return &stats, nil
}

func (r *LinkRepository) PingContext(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *LinkRepository) findOne(ctx context.Context, where sq.Sqlizer) (*models.UsefulLink, error) {
	query, args, err := psql.Select(columns...).From(table).Where(where).Limit(1).ToSql()
	if err != nil {
		return nil, err
	}

	l, err := scanLink(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, storage.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return l, nil
}

func (r *LinkRepository) findMany(ctx context.Context, where sq.Sqlizer) ([]models.UsefulLink, error) {
	b := psql.Select(columns...).From(table).OrderBy("created_at", "id")
	if where != nil {
		b = b.Where(where)
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	res := make([]models.UsefulLink, 0)
	for rows.Next() {
		l, err := scanLink(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, *l)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanLink(s scanner) (*models.UsefulLink, error) {
	var (
		l    models.UsefulLink
		desc sql.NullString
	)

	if err := s.Scan(&l.ID, &l.Title, &l.URL, &desc, &l.Category, &l.AuthorID, &l.CreatedAt); err != nil {
		return nil, err
	}

	if desc.Valid {
		l.Description = &desc.String
	}
	return &l, nil
}
