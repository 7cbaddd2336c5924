package db_test

import (
	"testing"

	"bungeoppang/internal/config"
	"bungeoppang/internal/db"
	"bungeoppang/internal/db/dbtest"
	"bungeoppang/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDialector(t *testing.T) {
	d, err := db.Dialector(&config.Config{DBDriver: "sqlite", SQLitePath: "x.db"})
	require.NoError(t, err)
	assert.Equal(t, "sqlite", d.Name())

	d, err = db.Dialector(&config.Config{DBDriver: "mysql", DBUser: "u", DBHost: "h", DBPort: "1", DBName: "n"})
	require.NoError(t, err)
	assert.Equal(t, "mysql", d.Name())

	_, err = db.Dialector(&config.Config{DBDriver: "oracle"})
	assert.Error(t, err)
}

func TestMigrateCreatesTables(t *testing.T) {
	conn := dbtest.New(t)
	for _, table := range []string{"users", "stores", "employees"} {
		assert.True(t, conn.Migrator().HasTable(table), table)
	}
	assert.True(t, conn.Migrator().HasIndex(&domain.Employee{}, "Code"))
	assert.True(t, conn.Migrator().HasIndex(&domain.User{}, "Email"))
}

func TestEmployeeCodeIsUnique(t *testing.T) {
	conn := dbtest.New(t)
	user, store := seed(t, conn)

	first := domain.Employee{Code: 123456, Type: domain.RoleStaff, IsActive: true, UserID: user.ID, StoreID: store.ID}
	require.NoError(t, conn.Create(&first).Error)

	dup := domain.Employee{Code: 123456, Type: domain.RoleManager, IsActive: true, UserID: user.ID, StoreID: store.ID}
	assert.ErrorIs(t, conn.Create(&dup).Error, gorm.ErrDuplicatedKey)
}

func TestDeletingUserCascadesToEmployees(t *testing.T) {
	conn := dbtest.New(t)
	user, store := seed(t, conn)

	emp := domain.Employee{Code: 222222, Type: domain.RoleStaff, IsActive: true, UserID: user.ID, StoreID: store.ID}
	require.NoError(t, conn.Create(&emp).Error)

	require.NoError(t, conn.Delete(&domain.User{}, user.ID).Error)

	var count int64
	require.NoError(t, conn.Model(&domain.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestDeletingStoreCascadesToEmployees(t *testing.T) {
	conn := dbtest.New(t)
	user, store := seed(t, conn)

	emp := domain.Employee{Code: 333333, Type: domain.RoleManager, IsActive: true, UserID: user.ID, StoreID: store.ID}
	require.NoError(t, conn.Create(&emp).Error)

	require.NoError(t, conn.Delete(&domain.Store{}, store.ID).Error)

	var count int64
	require.NoError(t, conn.Model(&domain.Employee{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestEmployeeRequiresExistingUser(t *testing.T) {
	conn := dbtest.New(t)
	_, store := seed(t, conn)

	orphan := domain.Employee{Code: 444444, Type: domain.RoleStaff, IsActive: true, UserID: 9999, StoreID: store.ID}
	assert.ErrorIs(t, conn.Create(&orphan).Error, gorm.ErrForeignKeyViolated)
}

func seed(t *testing.T, conn *gorm.DB) (domain.User, domain.Store) {
	t.Helper()
	user := domain.User{LastName: "Kim", Email: "kim@example.com", Password: "x", Gender: domain.GenderMale, IsActive: true}
	require.NoError(t, conn.Create(&user).Error)
	store := domain.Store{Name: "Gangnam Branch", IsActive: true}
	require.NoError(t, conn.Create(&store).Error)
	return user, store
}
