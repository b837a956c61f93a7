package repository

import (
	"context"

	"github.com/okr-tracker-api/internal/domain"
	"gorm.io/gorm"
)

// TeamRepository определяет интерфейс для работы с командами
type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int64) (*domain.Team, error)
	ListByOrganization(ctx context.Context, orgID int64) ([]domain.Team, error)
	Update(ctx context.Context, team *domain.Team) error
	SoftDelete(ctx context.Context, id int64) error
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository создаёт новый экземпляр репозитория
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

func (r *teamRepository) GetByID(ctx context.Context, id int64) (*domain.Team, error) {
	var team domain.Team
	err := r.db.WithContext(ctx).Preload("TeamLead").First(&team, id).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, domain.ErrTeamNotFound
		}
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) ListByOrganization(ctx context.Context, orgID int64) ([]domain.Team, error) {
	var teams []domain.Team
	err := r.db.WithContext(ctx).
		Scopes(Visible(orgID)).
		Preload("TeamLead").
		Order("name ASC").
		Find(&teams).Error
	return teams, err
}

func (r *teamRepository) Update(ctx context.Context, team *domain.Team) error {
	return r.db.WithContext(ctx).Omit("TeamLead", "Department").Save(team).Error
}

func (r *teamRepository) SoftDelete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).
		Model(&domain.Team{}).
		Where("id = ?", id).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTeamNotFound
	}
	return nil
}
