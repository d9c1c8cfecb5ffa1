package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"inkwell/contexts/identity/account-service/domain/entities"
	domainerrors "inkwell/contexts/identity/account-service/domain/errors"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateProfile(ctx context.Context, profile entities.UserProfile) (entities.UserProfile, error) {
	row := profileModel{
		Username:     strings.TrimSpace(profile.Username),
		PasswordHash: profile.PasswordHash,
		Role:         profile.Role,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return entities.UserProfile{}, domainerrors.ErrUsernameTaken
		}
		return entities.UserProfile{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetProfileByUsername(ctx context.Context, username string) (entities.UserProfile, error) {
	var row profileModel
	err := r.db.WithContext(ctx).
		Where("username = ?", strings.TrimSpace(username)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.UserProfile{}, domainerrors.ErrProfileNotFound
		}
		return entities.UserProfile{}, err
	}
	return row.toEntity(), nil
}

type profileModel struct {
	UserID       int64  `gorm:"column:user_id;primaryKey;autoIncrement"`
	Username     string `gorm:"column:username;uniqueIndex"`
	PasswordHash string `gorm:"column:password"`
	Role         string `gorm:"column:role"`
}

func (profileModel) TableName() string { return "profiles" }

func (m profileModel) toEntity() entities.UserProfile {
	return entities.UserProfile{
		UserID:       m.UserID,
		Username:     m.Username,
		PasswordHash: m.PasswordHash,
		Role:         m.Role,
	}
}

// Models lists the gorm models this adapter owns, for migration wiring.
func Models() []any {
	return []any{&profileModel{}}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
