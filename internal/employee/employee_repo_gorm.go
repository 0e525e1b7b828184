package employee

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewGormRepository stores employees in the PostgreSQL "employees" table
// created by the migrations.
func NewGormRepository(db *gorm.DB) Repository {
	return &gormRepository{db: db, now: storeNow}
}

func (r *gormRepository) FindAll(ctx context.Context) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&empls).Error
	return empls, err
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*Employee, error) {
	if !validID(id) {
		return nil, errMalformedID
	}

	var empl Employee
	if err := r.db.WithContext(ctx).First(&empl, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &empl, nil
}

func (r *gormRepository) Create(ctx context.Context, empl *Employee) error {
	now := r.now()
	empl.ID = uuid.NewString()
	empl.CreatedAt = now
	empl.UpdatedAt = now
	return r.db.WithContext(ctx).Create(empl).Error
}

func (r *gormRepository) Update(ctx context.Context, id string, fields EmployeeFields) (*Employee, error) {
	if !validID(id) {
		return nil, errMalformedID
	}

	var empl Employee
	res := r.db.WithContext(ctx).
		Model(&empl).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"name":       fields.Name,
			"location":   fields.Location,
			"position":   fields.Position,
			"salary":     fields.Salary,
			"updated_at": r.now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &empl, nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) (*Employee, error) {
	if !validID(id) {
		return nil, errMalformedID
	}

	var empl Employee
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&empl)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &empl, nil
}

func (r *gormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func validID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
