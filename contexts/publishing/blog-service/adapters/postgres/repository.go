package postgresadapter

import (
	"context"
	"errors"
	"log/slog"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"inkwell/contexts/publishing/blog-service/domain/entities"
	domainerrors "inkwell/contexts/publishing/blog-service/domain/errors"
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

func (r *Repository) CreatePost(ctx context.Context, post entities.BlogPost) (entities.BlogPost, error) {
	row := blogModel{
		UserID: post.UserID,
		Title:  post.Title,
		Body:   post.Body,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return entities.BlogPost{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListPosts(ctx context.Context) ([]entities.BlogPost, error) {
	var rows []blogModel
	if err := r.db.WithContext(ctx).Order("blog_id ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	items := make([]entities.BlogPost, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) UpdatePost(ctx context.Context, blogID int64, title string, body string) (entities.BlogPost, error) {
	result := r.db.WithContext(ctx).
		Model(&blogModel{}).
		Where("blog_id = ?", blogID).
		Updates(map[string]any{
			"title": title,
			"body":  body,
		})
	if result.Error != nil {
		return entities.BlogPost{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.BlogPost{}, domainerrors.ErrBlogNotFound
	}

	var row blogModel
	if err := r.db.WithContext(ctx).Where("blog_id = ?", blogID).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return entities.BlogPost{}, domainerrors.ErrBlogNotFound
		}
		return entities.BlogPost{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeletePost(ctx context.Context, blogID int64) (entities.BlogPost, error) {
	var row blogModel
	result := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("blog_id = ?", blogID).
		Delete(&row)
	if result.Error != nil {
		return entities.BlogPost{}, result.Error
	}
	if result.RowsAffected == 0 {
		return entities.BlogPost{}, domainerrors.ErrBlogNotFound
	}
	return row.toEntity(), nil
}

type blogModel struct {
	BlogID int64  `gorm:"column:blog_id;primaryKey;autoIncrement"`
	UserID int64  `gorm:"column:user_id"`
	Title  string `gorm:"column:title"`
	Body   string `gorm:"column:body"`
}

func (blogModel) TableName() string { return "blog" }

// Models lists the gorm models this adapter owns, for migration wiring.
func Models() []any {
	return []any{&blogModel{}}
}

func (m blogModel) toEntity() entities.BlogPost {
	return entities.BlogPost{
		BlogID: m.BlogID,
		UserID: m.UserID,
		Title:  m.Title,
		Body:   m.Body,
	}
}
