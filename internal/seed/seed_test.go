package seed

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"cafe-backend/internal/domain"
	"cafe-backend/internal/mocks"
	"cafe-backend/internal/service"
)

const sample = `
admin:
  username: admin
  email: admin@cafe.local
  password: secret123

categories:
  - name: 커피
    display_order: 1
    menus:
      - name: 아메리카노
        price: 4500
        description: 깔끔한 에스프레소와 물
  - name: 티
    display_order: 2
`

func TestLoadParsesCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	assert.NoError(t, os.WriteFile(path, []byte(sample), 0644))

	data, err := Load(path)

	assert.NoError(t, err)
	assert.Equal(t, "admin", data.Admin.Username)
	assert.Len(t, data.Categories, 2)
	assert.Equal(t, "커피", data.Categories[0].Name)
	assert.Len(t, data.Categories[0].Menus, 1)
	assert.Equal(t, 4500, data.Categories[0].Menus[0].Price)
	assert.Empty(t, data.Categories[1].Menus)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplySeedsAdminUser(t *testing.T) {
	users := mocks.NewUserRepository(t)
	userSvc := service.NewUserService(users, nil)
	catalogSvc := service.NewCatalogService(mocks.NewCategoryRepository(t), mocks.NewMenuRepository(t), nil, nil)

	var saved *domain.User
	users.On("CreateUser", mock.AnythingOfType("*domain.User")).
		Run(func(args mock.Arguments) {
			saved = args.Get(0).(*domain.User)
			saved.ID = 1
		}).Return(nil).Once()

	data := &Data{}
	data.Admin.Username = "admin"
	data.Admin.Email = "admin@cafe.local"
	data.Admin.Password = "secret123"

	assert.NoError(t, Apply(data, catalogSvc, userSvc, nil))
	assert.True(t, saved.IsAdmin)
	assert.True(t, saved.IsActive)
}
