package implementation

import (
	"context"
	"errors"

	"roombuddy-be/internal/entity"
	"roombuddy-be/internal/mapper"
	"roombuddy-be/internal/model"
	"roombuddy-be/internal/repository/contract"
	"roombuddy-be/internal/repository/specification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.PostMapper
}

func NewPostRepository(db *gorm.DB) contract.PostRepository {
	return &PostRepositoryImpl{
		db:     db,
		mapper: mapper.NewPostMapper(),
	}
}

func (r *PostRepositoryImpl) applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

func (r *PostRepositoryImpl) Create(ctx context.Context, post *entity.Post) error {
	modelPost := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Create(modelPost).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(modelPost)
	return nil
}

func (r *PostRepositoryImpl) Update(ctx context.Context, post *entity.Post) error {
	modelPost := r.mapper.ToModel(post)
	if err := r.db.WithContext(ctx).Save(modelPost).Error; err != nil {
		return err
	}
	*post = *r.mapper.ToEntity(modelPost)
	return nil
}

func (r *PostRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Post{}).Error
}

func (r *PostRepositoryImpl) FindById(ctx context.Context, id uuid.UUID) (*entity.Post, error) {
	var modelPost model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specification.ByID{ID: id})

	if err := query.First(&modelPost).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapper.ToEntity(&modelPost), nil
}

func (r *PostRepositoryImpl) FindByIds(ctx context.Context, ids []uuid.UUID) ([]*entity.Post, error) {
	var modelPosts []*model.Post
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modelPosts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelPosts), nil
}

func (r *PostRepositoryImpl) FindByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Post, error) {
	var modelPosts []*model.Post
	query := r.applySpecifications(r.db.WithContext(ctx),
		specification.UserOwnedBy{UserID: userId},
		specification.OrderBy{Field: "created_at", Desc: true},
	)
	if err := query.Find(&modelPosts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelPosts), nil
}

func (r *PostRepositoryImpl) Search(ctx context.Context, filter entity.PostFilter) ([]*entity.Post, error) {
	specs := []specification.Specification{
		specification.ActiveOnly{},
	}
	if filter.City != "" {
		specs = append(specs, specification.CityLike{City: filter.City})
	}
	if filter.BudgetMin != nil {
		specs = append(specs, specification.BudgetAtLeast{Min: *filter.BudgetMin})
	}
	if filter.BudgetMax != nil {
		specs = append(specs, specification.BudgetAtMost{Max: *filter.BudgetMax})
	}
	if filter.Gender != "" {
		specs = append(specs, specification.GenderIs{Gender: filter.Gender})
	}
	specs = append(specs, specification.OrderBy{Field: "created_at", Desc: true})
	if filter.Limit > 0 {
		specs = append(specs, specification.Pagination{Limit: filter.Limit, Offset: filter.Offset})
	}

	var modelPosts []*model.Post
	query := r.applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&modelPosts).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(modelPosts), nil
}
