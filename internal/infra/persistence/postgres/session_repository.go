package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"confusion/internal/domain/entity"
	domainerrors "confusion/internal/domain/errors"
	"confusion/internal/domain/repository"
	"confusion/internal/infra/persistence/model"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// CreateSession persists a new session record.
func (repo *sessionRepository) CreateSession(ctx context.Context, session *entity.Session) error {
	sessionM := fromSessionDomain(session)

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.NewDatabaseExecuteError(err, "session references unknown user")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create session")
	}

	session.ID = sessionM.ID
	session.CreatedAt = sessionM.CreatedAt

	return nil
}

// FindSessionByID retrieves a session by its opaque id. An expired record is
// removed on read so stale rows do not linger until the next sweep.
func (repo *sessionRepository) FindSessionByID(ctx context.Context, id uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	if err := repo.db.WithContext(ctx).First(&sessionM, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by id")
	}

	if time.Now().After(sessionM.ExpiresAt) {
		if err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id).Error; err != nil {
			return nil, errors.Wrap(err, "failed to delete expired session")
		}

		return nil, repository.ErrSessionExpired
	}

	return toSessionDomain(&sessionM), nil
}

// DeleteSession removes a session record. Deleting an absent session is not an error.
func (repo *sessionRepository) DeleteSession(ctx context.Context, id uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "id = ?", id).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete session")
	}

	return nil
}

// DeleteExpiredSessions removes all sessions past their expiry and reports how many.
func (repo *sessionRepository) DeleteExpiredSessions(ctx context.Context) (int, error) {
	result := repo.db.WithContext(ctx).Delete(&model.SessionModel{}, "expires_at < ?", time.Now())
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete expired sessions")
	}

	return int(result.RowsAffected), nil
}

// toSessionDomain maps the persistence model to a pure domain entity.
func toSessionDomain(data *model.SessionModel) *entity.Session {
	return &entity.Session{
		ID:        data.ID,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}

// fromSessionDomain maps a domain entity to the persistence model.
func fromSessionDomain(data *entity.Session) *model.SessionModel {
	return &model.SessionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		ExpiresAt: data.ExpiresAt,
		CreatedAt: data.CreatedAt,
	}
}
