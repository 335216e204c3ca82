package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/itlaf/fotostudio/internal/models"
	"github.com/itlaf/fotostudio/internal/store"
)

type SessionStore struct {
	DB *sqlx.DB
}

func NewSessionStore(db *sqlx.DB) *SessionStore {
	return &SessionStore{DB: db}
}

const sessionColumns = `id, client_id, date, type, location, notes, status, created_at, updated_at`

func loadPhotos(ctx context.Context, db *sqlx.DB, sessionID string) ([]models.Photo, error) {
	photos := []models.Photo{}
	err := db.SelectContext(ctx, &photos, `
		SELECT id, session_id, url, filename, description, created_at
		FROM photos WHERE session_id=$1 ORDER BY created_at
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load photos: %w", err)
	}
	return photos, nil
}

func (s *SessionStore) Create(ctx context.Context, sess *models.Session) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO sessions (id, client_id, date, type, location, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING created_at, updated_at
	`, sess.ID, sess.ClientID, sess.Date, sess.Type, sess.Location, sess.Notes, sess.Status).
		Scan(&sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert session: %w", mapErr(err))
	}
	sess.Photos = []models.Photo{}
	return nil
}

func (s *SessionStore) attach(ctx context.Context, sess *models.Session) error {
	var c models.Client
	err := s.DB.GetContext(ctx, &c, `SELECT `+clientColumns+` FROM clients WHERE id=$1`, sess.ClientID)
	if err != nil {
		return fmt.Errorf("load session client: %w", mapErr(err))
	}
	sess.Client = &c

	photos, err := loadPhotos(ctx, s.DB, sess.ID)
	if err != nil {
		return err
	}
	sess.Photos = photos
	return nil
}

func (s *SessionStore) GetByID(ctx context.Context, id string) (*models.Session, error) {
	var sess models.Session
	err := s.DB.GetContext(ctx, &sess, `SELECT `+sessionColumns+` FROM sessions WHERE id=$1`, id)
	if err != nil {
		return nil, mapErr(err)
	}
	if err := s.attach(ctx, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SessionStore) List(ctx context.Context) ([]models.Session, error) {
	sessions := []models.Session{}
	err := s.DB.SelectContext(ctx, &sessions, `SELECT `+sessionColumns+` FROM sessions ORDER BY date DESC`)
	if err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	for i := range sessions {
		if err := s.attach(ctx, &sessions[i]); err != nil {
			return nil, err
		}
	}
	return sessions, nil
}

func (s *SessionStore) Update(ctx context.Context, sess *models.Session) error {
	err := s.DB.QueryRowxContext(ctx, `
		UPDATE sessions
		SET client_id=$1, date=$2, type=$3, location=$4, notes=$5, status=$6, updated_at=NOW()
		WHERE id=$7
		RETURNING created_at, updated_at
	`, sess.ClientID, sess.Date, sess.Type, sess.Location, sess.Notes, sess.Status, sess.ID).
		Scan(&sess.CreatedAt, &sess.UpdatedAt)
	if err != nil {
		return fmt.Errorf("update session: %w", mapErr(err))
	}
	return nil
}

func (s *SessionStore) UpdateStatus(ctx context.Context, id string, status models.SessionStatus) error {
	res, err := s.DB.ExecContext(ctx, `
		UPDATE sessions SET status=$1, updated_at=NOW() WHERE id=$2
	`, status, id)
	if err != nil {
		return fmt.Errorf("update session status: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *SessionStore) Delete(ctx context.Context, id string) error {
	res, err := s.DB.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *SessionStore) AddPhoto(ctx context.Context, p *models.Photo) error {
	err := s.DB.QueryRowxContext(ctx, `
		INSERT INTO photos (id, session_id, url, filename, description)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`, p.ID, p.SessionID, p.URL, p.Filename, p.Description).
		Scan(&p.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert photo: %w", mapErr(err))
	}
	return nil
}

func (s *SessionStore) DeletePhoto(ctx context.Context, sessionID, photoID string) error {
	res, err := s.DB.ExecContext(ctx, `
		DELETE FROM photos WHERE id=$1 AND session_id=$2
	`, photoID, sessionID)
	if err != nil {
		return fmt.Errorf("delete photo: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return store.ErrNotFound
	}
	return nil
}

var _ store.SessionStore = (*SessionStore)(nil)
