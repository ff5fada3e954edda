package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/franciscosanchezn/bytebistro-api/internal/errs"
	"github.com/franciscosanchezn/bytebistro-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RoleService resolves roles from group membership and manages the
// Manager and Delivery Crew groups.
type RoleService interface {
	// ResolveRoles returns every role held by the user. Customer is always present,
	// Admin comes from the superuser flag.
	ResolveRoles(ctx context.Context, userID uint) (models.RoleSet, error)
	// HasRole reports literal membership of a group-managed role.
	HasRole(ctx context.Context, userID uint, role models.Role) (bool, error)
	ListUsersInRole(ctx context.Context, role models.Role) ([]models.User, error)
	GetUserInRole(ctx context.Context, role models.Role, userID uint) (*models.User, error)
	// GrantRole adds the user to the role group. Granting twice is a no-op.
	GrantRole(ctx context.Context, role models.Role, username string) (*models.User, error)
	RevokeRole(ctx context.Context, role models.Role, userID uint) error
	// ProvisionGroups creates the role groups that do not exist yet.
	ProvisionGroups(ctx context.Context) error
	// VerifyGroups fails when any role group is missing.
	VerifyGroups(ctx context.Context) error
}

type roleService struct {
	db *gorm.DB
}

func NewRoleService(db *gorm.DB) RoleService {
	return &roleService{db: db}
}

func (s *roleService) ResolveRoles(ctx context.Context, userID uint) (models.RoleSet, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Preload("Groups").First(&user, userID).Error; err != nil {
		return nil, notFoundOr(err, "user", userID)
	}

	roles := models.NewRoleSet(models.RoleCustomer)
	if user.IsSuperuser {
		roles[models.RoleAdmin] = struct{}{}
	}
	for _, g := range user.Groups {
		switch g.Name {
		case models.ManagerGroup:
			roles[models.RoleManager] = struct{}{}
		case models.DeliveryCrewGroup:
			roles[models.RoleDeliveryCrew] = struct{}{}
		}
	}
	return roles, nil
}

func (s *roleService) HasRole(ctx context.Context, userID uint, role models.Role) (bool, error) {
	roles, err := s.ResolveRoles(ctx, userID)
	if err != nil {
		return false, err
	}
	return roles.Holds(role), nil
}

func (s *roleService) group(ctx context.Context, role models.Role) (*models.Group, error) {
	name, err := role.GroupName()
	if err != nil {
		return nil, errs.NewValidationError("role", err.Error())
	}
	var group models.Group
	if err := s.db.WithContext(ctx).Where("name = ?", name).First(&group).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %q", ErrGroupMissing, name)
		}
		return nil, err
	}
	return &group, nil
}

func (s *roleService) members(ctx context.Context, group *models.Group) *gorm.DB {
	return s.db.WithContext(ctx).Model(&models.User{}).
		Joins("JOIN user_groups ON user_groups.user_id = users.id").
		Where("user_groups.group_id = ?", group.ID)
}

func (s *roleService) ListUsersInRole(ctx context.Context, role models.Role) ([]models.User, error) {
	group, err := s.group(ctx, role)
	if err != nil {
		return nil, err
	}
	var users []models.User
	if err := s.members(ctx, group).Order("users.id").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (s *roleService) GetUserInRole(ctx context.Context, role models.Role, userID uint) (*models.User, error) {
	group, err := s.group(ctx, role)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.members(ctx, group).Where("users.id = ?", userID).First(&user).Error; err != nil {
		return nil, notFoundOr(err, group.Name+" member", userID)
	}
	return &user, nil
}

func (s *roleService) GrantRole(ctx context.Context, role models.Role, username string) (*models.User, error) {
	if username == "" {
		return nil, errs.NewValidationError("username", "this field is required")
	}
	group, err := s.group(ctx, role)
	if err != nil {
		return nil, err
	}
	var user models.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFoundOr(err, "user", username)
	}
	if err := s.db.WithContext(ctx).Model(&user).Association("Groups").Append(group); err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"group":   group.Name,
	}).Info("Role granted")
	return &user, nil
}

func (s *roleService) RevokeRole(ctx context.Context, role models.Role, userID uint) error {
	user, err := s.GetUserInRole(ctx, role, userID)
	if err != nil {
		return err
	}
	group, err := s.group(ctx, role)
	if err != nil {
		return err
	}
	if err := s.db.WithContext(ctx).Model(user).Association("Groups").Delete(group); err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"user_id": user.ID,
		"group":   group.Name,
	}).Info("Role revoked")
	return nil
}

func (s *roleService) ProvisionGroups(ctx context.Context) error {
	for _, role := range models.GroupRoles() {
		name, _ := role.GroupName()
		group := models.Group{Name: name}
		if err := s.db.WithContext(ctx).Where("name = ?", name).FirstOrCreate(&group).Error; err != nil {
			return fmt.Errorf("provision group %q: %w", name, err)
		}
	}
	return nil
}

func (s *roleService) VerifyGroups(ctx context.Context) error {
	var missing []error
	for _, role := range models.GroupRoles() {
		if _, err := s.group(ctx, role); err != nil {
			missing = append(missing, err)
		}
	}
	return errors.Join(missing...)
}
