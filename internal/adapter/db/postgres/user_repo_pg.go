package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"crm-services/internal/domain/user"
	pkgerrors "crm-services/pkg/errors"
)

// UserRepoPG implements the user repository interface using GORM.
type UserRepoPG struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewUserRepoPG creates a new instance of UserRepoPG.
func NewUserRepoPG(db *gorm.DB, log *zap.Logger) *UserRepoPG {
	return &UserRepoPG{db: db, log: log}
}

// UserSchema represents the database schema for the users table.
type UserSchema struct {
	ID        int64     `gorm:"primaryKey;autoIncrement"`
	Email     string    `gorm:"size:255;not null;uniqueIndex:idx_users_email"`
	Name      string    `gorm:"size:255;not null"`
	Role      string    `gorm:"size:50;not null;default:user"`
	Active    bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_users_created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName specifies the table name for the UserSchema model.
func (UserSchema) TableName() string {
	return "users"
}

func (m *UserSchema) toDomain() *user.User {
	return &user.User{
		ID:        m.ID,
		Email:     m.Email,
		Name:      m.Name,
		Role:      m.Role,
		Active:    m.Active,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// Create inserts a new user and returns the stored row including the
// server-assigned id and timestamps. A uniqueness violation on email is
// surfaced as an AlreadyExistsError.
func (r *UserRepoPG) Create(ctx context.Context, u *user.User) (*user.User, error) {
	if u == nil {
		return nil, errors.New("user cannot be nil")
	}

	model := UserSchema{
		Email:  u.Email,
		Name:   u.Name,
		Role:   u.Role,
		Active: true,
	}

	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			r.log.Warn("duplicate email on user insert", zap.String("email", u.Email))
			return nil, pkgerrors.NewAlreadyExistsError("user", "user already exists")
		}
		r.log.Error("failed to create user in db", zap.Error(err), zap.String("email", u.Email))
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	r.log.Info("user created in db", zap.Int64("id", model.ID))
	return model.toDomain(), nil
}

// GetByID retrieves a user by their unique ID.
func (r *UserRepoPG) GetByID(ctx context.Context, id int64) (*user.User, error) {
	var model UserSchema
	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.log.Warn("user not found", zap.Int64("id", id))
			return nil, pkgerrors.NewNotFoundError("user", "user not found")
		}
		r.log.Error("failed to get user from db", zap.Error(err), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return model.toDomain(), nil
}

// Update applies the supplied sparse fields to the user row. Present fields
// are mapped to parameterized column assignments; identifiers are never
// interpolated. updated_at is bumped by GORM on every update.
func (r *UserRepoPG) Update(ctx context.Context, id int64, fields user.Update) (*user.User, error) {
	assignments := map[string]any{}
	if fields.Name != nil {
		assignments["name"] = *fields.Name
	}
	if fields.Role != nil {
		assignments["role"] = *fields.Role
	}
	if fields.Active != nil {
		assignments["active"] = *fields.Active
	}
	if len(assignments) == 0 {
		return nil, pkgerrors.NewValidationError("", "no fields to update")
	}

	res := r.db.WithContext(ctx).Model(&UserSchema{}).Where("id = ?", id).Updates(assignments)
	if res.Error != nil {
		r.log.Error("failed to update user in db", zap.Error(res.Error), zap.Int64("id", id))
		return nil, fmt.Errorf("failed to update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("user not found on update", zap.Int64("id", id))
		return nil, pkgerrors.NewNotFoundError("user", "user not found")
	}

	r.log.Info("user updated in db", zap.Int64("id", id))
	return r.GetByID(ctx, id)
}

// Delete removes a user row by ID.
func (r *UserRepoPG) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&UserSchema{}, id)
	if res.Error != nil {
		r.log.Error("failed to delete user in db", zap.Error(res.Error), zap.Int64("id", id))
		return fmt.Errorf("failed to delete user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		r.log.Warn("user not found on delete", zap.Int64("id", id))
		return pkgerrors.NewNotFoundError("user", "user not found")
	}

	r.log.Info("user deleted in db", zap.Int64("id", id))
	return nil
}

// List retrieves users ordered by creation time descending with
// limit/offset pagination.
func (r *UserRepoPG) List(ctx context.Context, limit, offset int) ([]user.User, error) {
	var models []UserSchema
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&models).Error
	if err != nil {
		r.log.Error("failed to list users from db", zap.Error(err), zap.Int("limit", limit), zap.Int("offset", offset))
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]user.User, len(models))
	for i, model := range models {
		users[i] = *model.toDomain()
	}

	return users, nil
}
