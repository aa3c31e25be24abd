// Package access decides whether a user may act on a travel idea group.
package access

import (
	"github.com/gofiber/fiber/v2"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
	"github.com/wanderlist/wanderlist/internal/webserver/validation"
)

type Role int

const (
	// Member actions are allowed to the owner and every member of the group
	Member Role = iota
	// Owner actions are allowed only to the owner of the group
	Owner
)

var (
	ErrGroupNotFound = fiber.NewError(fiber.StatusNotFound, "Travel idea group not found")
	ErrNotOwner      = fiber.NewError(fiber.StatusForbidden, "Not authorised to perform this action")
	ErrNotMember     = fiber.NewError(fiber.StatusForbidden, "Not authorised to access this travel idea group")
)

type groupsRepository interface {
	FindByID(id uint) (*model.Group, error)
}

// Check loads the group and verifies that user holds role on it.
// It returns the group together with its members.
func Check(groups groupsRepository, groupID uint, user *model.User, role Role) (*model.Group, []model.User, error) {
	group, err := groups.FindByID(groupID)
	if err != nil {
		return nil, nil, fiber.ErrInternalServerError
	}
	if group == nil {
		return nil, nil, ErrGroupNotFound
	}

	members := group.MemberUsers()

	if group.OwnedByID == user.ID {
		return group, members, nil
	}
	if role == Owner {
		return nil, nil, ErrNotOwner
	}

	for _, m := range members {
		if m.ID == user.ID {
			return group, members, nil
		}
	}
	return nil, nil, ErrNotMember
}

// CanAccess reports whether the given email belongs to the owner or a member of the group
func CanAccess(group *model.Group, members []model.User, email string) bool {
	email = validation.NormalizeEmail(email)
	if group.OwnedBy != nil && validation.NormalizeEmail(group.OwnedBy.Email) == email {
		return true
	}
	for _, m := range members {
		if validation.NormalizeEmail(m.Email) == email {
			return true
		}
	}
	return false
}
