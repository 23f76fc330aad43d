package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/quadspace/internal/domain/entity"
	"github.com/bnema/quadspace/internal/domain/repository"
)

// Rows are only ever appended, so id order is activation order.
const (
	insertActivation = `INSERT INTO workspace_activations
	(workspace, activated_at, fullscreen, sidebar_width, panes_created)
	VALUES (?, ?, ?, ?, ?)`

	selectActivations = `SELECT id, workspace, activated_at, fullscreen, sidebar_width, panes_created
	FROM workspace_activations`

	pruneActivations = `DELETE FROM workspace_activations
	WHERE id NOT IN (SELECT id FROM workspace_activations ORDER BY id DESC LIMIT ?)`
)

type activationRepo struct {
	db *sql.DB
}

// NewActivationRepository creates a SQLite-backed activation repository.
func NewActivationRepository(db *sql.DB) repository.ActivationRepository {
	return &activationRepo{db: db}
}

func (r *activationRepo) Record(ctx context.Context, a *entity.WorkspaceActivation) error {
	at := a.ActivatedAt
	if at.IsZero() {
		at = time.Now()
	}
	res, err := r.db.ExecContext(ctx, insertActivation,
		a.Workspace, at.UTC(), boolToInt(a.Fullscreen), a.SidebarWidth, a.PanesCreated)
	if err != nil {
		return fmt.Errorf("failed to record activation: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read activation id: %w", err)
	}
	a.ID = id
	a.ActivatedAt = at
	return nil
}

func (r *activationRepo) GetRecent(ctx context.Context, limit int) ([]*entity.WorkspaceActivation, error) {
	rows, err := r.db.QueryContext(ctx, selectActivations+" ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query activations: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []*entity.WorkspaceActivation
	for rows.Next() {
		a, err := scanActivation(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (r *activationRepo) Last(ctx context.Context) (*entity.WorkspaceActivation, error) {
	row := r.db.QueryRowContext(ctx, selectActivations+" ORDER BY id DESC LIMIT 1")
	a, err := scanActivation(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return a, err
}

func (r *activationRepo) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := r.db.ExecContext(ctx, pruneActivations, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune activations: %w", err)
	}
	return res.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanActivation(s scanner) (*entity.WorkspaceActivation, error) {
	var (
		a          entity.WorkspaceActivation
		fullscreen int64
	)
	if err := s.Scan(&a.ID, &a.Workspace, &a.ActivatedAt, &fullscreen, &a.SidebarWidth, &a.PanesCreated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan activation: %w", err)
	}
	a.Fullscreen = fullscreen != 0
	return &a, nil
}

func boolToInt(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
