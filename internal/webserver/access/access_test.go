package access_test

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wanderlist/wanderlist/internal/webserver/access"
	"github.com/wanderlist/wanderlist/internal/webserver/model"
)

type groupsMock struct {
	group *model.Group
}

func (g groupsMock) FindByID(id uint) (*model.Group, error) {
	if g.group == nil || g.group.ID != id {
		return nil, nil
	}
	return g.group, nil
}

func TestCheck(t *testing.T) {
	owner := model.User{ID: 1, Email: "owner@example.com"}
	member := model.User{ID: 2, Email: "member@example.com"}
	stranger := model.User{ID: 3, Email: "stranger@example.com"}

	groups := groupsMock{group: &model.Group{
		ID:        10,
		Name:      "Summer",
		OwnedByID: owner.ID,
		OwnedBy:   &owner,
		Members:   []model.Member{{ID: 1, UserID: member.ID, User: &member, GroupID: 10}},
	}}

	var cases = []struct {
		name        string
		groupID     uint
		user        model.User
		role        access.Role
		expectedErr *fiber.Error
	}{
		{"Owner can perform owner actions", 10, owner, access.Owner, nil},
		{"Owner can perform member actions", 10, owner, access.Member, nil},
		{"Member can perform member actions", 10, member, access.Member, nil},
		{"Member cannot perform owner actions", 10, member, access.Owner, access.ErrNotOwner},
		{"Stranger cannot perform member actions", 10, stranger, access.Member, access.ErrNotMember},
		{"Stranger cannot perform owner actions", 10, stranger, access.Owner, access.ErrNotOwner},
		{"Missing groups are reported before permissions", 99, stranger, access.Owner, access.ErrGroupNotFound},
	}

	for _, tcase := range cases {
		t.Run(tcase.name, func(t *testing.T) {
			group, members, err := access.Check(groups, tcase.groupID, &tcase.user, tcase.role)
			if tcase.expectedErr != nil {
				assert.Equal(t, tcase.expectedErr, err)
				assert.Nil(t, group)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uint(10), group.ID)
			assert.Equal(t, []model.User{member}, members)
		})
	}
}

func TestCanAccess(t *testing.T) {
	owner := model.User{ID: 1, Email: "owner@example.com"}
	member := model.User{ID: 2, Email: "member@example.com"}
	group := &model.Group{ID: 10, OwnedByID: owner.ID, OwnedBy: &owner}

	assert.True(t, access.CanAccess(group, []model.User{member}, "owner@example.com"))
	assert.True(t, access.CanAccess(group, []model.User{member}, "member@example.com"))
	assert.False(t, access.CanAccess(group, []model.User{member}, "other@example.com"))
	assert.True(t, access.CanAccess(group, []model.User{member}, "owner@Example.COM"))
	assert.False(t, access.CanAccess(group, []model.User{member}, "Owner@example.com"))
}
