package repository

import (
	"context"

	"github.com/okr-tracker-api/internal/domain"
	"gorm.io/gorm"
)

// OKRFilter задаёт необязательные фильтры списка OKR,
// объединяемые по И
type OKRFilter struct {
	Status         domain.OKRStatus
	Priority       domain.OKRPriority
	AssignedUserID *int64
	AssignedTeamID *int64
}

// OKRRepository определяет интерфейс для работы с OKR
type OKRRepository interface {
	Create(ctx context.Context, okr *domain.OKR) error
	GetByID(ctx context.Context, id int64) (*domain.OKR, error)
	ListByOrganization(ctx context.Context, orgID int64, filter OKRFilter) ([]domain.OKR, error)
	Update(ctx context.Context, okr *domain.OKR) error
	ReplaceKeyResults(ctx context.Context, okrID int64, keyResults []domain.KeyResult) error
	AppendComment(ctx context.Context, comment *domain.Comment) error
	SoftDelete(ctx context.Context, id int64) error
}

type okrRepository struct {
	db *gorm.DB
}

// NewOKRRepository создаёт новый экземпляр репозитория
func NewOKRRepository(db *gorm.DB) OKRRepository {
	return &okrRepository{db: db}
}

func (r *okrRepository) Create(ctx context.Context, okr *domain.OKR) error {
	for i := range okr.KeyResults {
		okr.KeyResults[i].Position = i
	}
	return r.db.WithContext(ctx).Create(okr).Error
}

// GetByID возвращает OKR по идентификатору независимо от флага
// is_active: мягко удалённая запись остаётся доступной напрямую,
// фильтруются только списки.
func (r *okrRepository) GetByID(ctx context.Context, id int64) (*domain.OKR, error) {
	var okr domain.OKR
	err := r.db.WithContext(ctx).
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Preload("Comments.User").
		Preload("AssignedBy").
		First(&okr, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrOKRNotFound
		}
		return nil, err
	}
	return &okr, nil
}

func (r *okrRepository) ListByOrganization(ctx context.Context, orgID int64, filter OKRFilter) ([]domain.OKR, error) {
	query := r.db.WithContext(ctx).
		Scopes(Visible(orgID)).
		Preload("KeyResults", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Preload("AssignedBy")

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Priority != "" {
		query = query.Where("priority = ?", filter.Priority)
	}
	if filter.AssignedUserID != nil {
		query = query.Where("assigned_to_type = ? AND assigned_to_user_id = ?",
			domain.AssignmentUser, *filter.AssignedUserID)
	}
	if filter.AssignedTeamID != nil {
		query = query.Where("assigned_to_type = ? AND assigned_to_team_id = ?",
			domain.AssignmentTeam, *filter.AssignedTeamID)
	}

	var okrs []domain.OKR
	err := query.Order("created_at DESC").Find(&okrs).Error
	return okrs, err
}

// Update сохраняет поля OKR и заменяет набор ключевых результатов
// целиком в одной транзакции
func (r *okrRepository) Update(ctx context.Context, okr *domain.OKR) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("okr_id = ?", okr.ID).Delete(&domain.KeyResult{}).Error; err != nil {
			return err
		}
		for i := range okr.KeyResults {
			okr.KeyResults[i].ID = 0
			okr.KeyResults[i].OKRID = okr.ID
			okr.KeyResults[i].Position = i
		}
		return tx.Omit("Comments", "AssignedBy").Save(okr).Error
	})
}

func (r *okrRepository) ReplaceKeyResults(ctx context.Context, okrID int64, keyResults []domain.KeyResult) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("okr_id = ?", okrID).Delete(&domain.KeyResult{}).Error; err != nil {
			return err
		}
		if len(keyResults) == 0 {
			return nil
		}
		for i := range keyResults {
			keyResults[i].ID = 0
			keyResults[i].OKRID = okrID
			keyResults[i].Position = i
		}
		return tx.Create(&keyResults).Error
	})
}

func (r *okrRepository) AppendComment(ctx context.Context, comment *domain.Comment) error {
	return r.db.WithContext(ctx).Create(comment).Error
}

func (r *okrRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.OKR{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrOKRNotFound
	}
	return nil
}
