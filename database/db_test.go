package database

import (
	"path/filepath"
	"testing"

	"smoothblog/database/model"
	"smoothblog/util/crypto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setup(t *testing.T) string {
	t.Helper()
	t.Setenv("SMOOTHBLOG_ADMIN_EMAIL", "admin@email.com")
	t.Setenv("SMOOTHBLOG_ADMIN_USERNAME", "admin")
	t.Setenv("SMOOTHBLOG_ADMIN_PASSWORD", "admin")
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, InitDB(dbPath))
	t.Cleanup(func() {
		_ = CloseDB()
	})
	return dbPath
}

func TestInitDBSeedsAdmin(t *testing.T) {
	setup(t)

	var users []model.User
	require.NoError(t, GetDB().Find(&users).Error)
	require.Len(t, users, 1)

	admin := users[0]
	assert.Equal(t, "admin@email.com", admin.Email)
	assert.Equal(t, "admin", admin.Username)
	assert.True(t, admin.IsAdmin)
	// Stored as a hash, never plaintext
	assert.NotEqual(t, "admin", admin.Password)
	assert.True(t, crypto.CheckPasswordHash(admin.Password, "admin"))
}

func TestInitDBKeepsExistingUsers(t *testing.T) {
	dbPath := setup(t)

	hash, err := crypto.HashPassword("test")
	require.NoError(t, err)
	require.NoError(t, GetDB().Create(&model.User{
		Email:    "test@email.com",
		Username: "test",
		Password: hash,
	}).Error)

	// A second init over the same file must not reseed
	require.NoError(t, CloseDB())
	require.NoError(t, InitDB(dbPath))

	var count int64
	require.NoError(t, GetDB().Model(&model.User{}).Count(&count).Error)
	assert.EqualValues(t, 2, count)

	var admins int64
	require.NoError(t, GetDB().Model(&model.User{}).Where("is_admin = ?", true).Count(&admins).Error)
	assert.EqualValues(t, 1, admins)
}

func TestResetDB(t *testing.T) {
	setup(t)

	hash, err := crypto.HashPassword("test")
	require.NoError(t, err)
	user := &model.User{Email: "test@email.com", Username: "test", Password: hash}
	require.NoError(t, GetDB().Create(user).Error)
	require.NoError(t, GetDB().Create(&model.Post{
		Title:   "test title",
		Content: "test content",
		UserId:  user.Id,
	}).Error)

	require.NoError(t, ResetDB())

	var users []model.User
	require.NoError(t, GetDB().Find(&users).Error)
	require.Len(t, users, 1)
	assert.True(t, users[0].IsAdmin)

	var posts int64
	require.NoError(t, GetDB().Model(&model.Post{}).Count(&posts).Error)
	assert.Zero(t, posts)
}

func TestIsDuplicate(t *testing.T) {
	setup(t)

	hash, err := crypto.HashPassword("test")
	require.NoError(t, err)
	require.NoError(t, GetDB().Create(&model.User{
		Email:    "test@email.com",
		Username: "test",
		Password: hash,
	}).Error)

	err = GetDB().Create(&model.User{
		Email:    "test@email.com",
		Username: "test2",
		Password: hash,
	}).Error
	require.Error(t, err)
	assert.True(t, IsDuplicate(err))
	assert.False(t, IsDuplicate(nil))
}
