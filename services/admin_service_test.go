package services

import (
	"testing"

	"campuseats-be/entity"
	"campuseats-be/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAdminHarness(t *testing.T) (*AdminService, *gorm.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewAdminService(repository.NewAdminRepository(db), repository.NewUserRepository(db)), db
}

func TestAdminAddPromotesExistingUser(t *testing.T) {
	svc, db := newAdminHarness(t)
	user := seedUser(t, db, "staff@example.com")

	admin, err := svc.Add(AddAdminIn{Email: "  Staff@Example.com ", DisplayName: "Staff", Role: entity.RoleModerator})
	require.NoError(t, err)
	assert.Equal(t, user.ID, admin.UserID)
	assert.Equal(t, "staff@example.com", admin.Email)
	assert.Equal(t, entity.RoleModerator, admin.Role)
	assert.True(t, admin.IsActive)

	// promoting twice is a validation error, not a duplicate row
	_, err = svc.Add(AddAdminIn{Email: "staff@example.com", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, ErrInvalidPayload)

	list, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAdminAddUnknownUser(t *testing.T) {
	svc, _ := newAdminHarness(t)
	_, err := svc.Add(AddAdminIn{Email: "ghost@example.com", Role: entity.RoleAdmin})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAdminRemoveRejectsSelf(t *testing.T) {
	svc, db := newAdminHarness(t)
	user := seedUser(t, db, "boss@example.com")
	boss, err := svc.Add(AddAdminIn{Email: user.Email, Role: entity.RoleSuperAdmin})
	require.NoError(t, err)

	err = svc.Remove(boss.ID, boss.ID)
	require.ErrorIs(t, err, ErrSelfRemoval)

	// the row is untouched
	var count int64
	require.NoError(t, db.Model(&entity.Admin{}).Where("id = ?", boss.ID).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestAdminRemove(t *testing.T) {
	svc, db := newAdminHarness(t)
	boss := seedUser(t, db, "boss@example.com")
	target := seedUser(t, db, "mod@example.com")

	caller, err := svc.Add(AddAdminIn{Email: boss.Email, Role: entity.RoleSuperAdmin})
	require.NoError(t, err)
	victim, err := svc.Add(AddAdminIn{Email: target.Email, Role: entity.RoleModerator})
	require.NoError(t, err)

	require.NoError(t, svc.Remove(caller.ID, victim.ID))
	assert.ErrorIs(t, svc.Remove(caller.ID, victim.ID), ErrNotFound)
}
