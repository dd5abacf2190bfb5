package service

import (
	"context"

	log "github.com/sirupsen/logrus"

	"cafe-backend/internal/domain"
)

// CatalogService covers the admin-managed side of the shop: categories and the
// menus inside them. The menu cache is optional; a nil cache disables it.
type CatalogService struct {
	categories CategoryRepository
	menus      MenuRepository
	cache      MenuCacheStore
	logger     *log.Logger
}

func NewCatalogService(categories CategoryRepository, menus MenuRepository, cache MenuCacheStore, logger *log.Logger) *CatalogService {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &CatalogService{categories: categories, menus: menus, cache: cache, logger: logger}
}

func (s *CatalogService) CreateCategory(req CategoryCreate) (*domain.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	category := &domain.Category{Name: req.Name, DisplayOrder: req.DisplayOrder}
	if err := s.categories.CreateCategory(category); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"category_id": category.ID, "name": category.Name}).Info("category created")
	return category, nil
}

func (s *CatalogService) ListCategories() ([]domain.Category, error) {
	return s.categories.ListCategories()
}

func (s *CatalogService) GetCategory(id int) (*domain.Category, error) {
	return s.categories.GetCategory(id)
}

func (s *CatalogService) UpdateCategory(id int, req CategoryUpdate) (*domain.Category, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return s.categories.UpdateCategory(id, req.Fields())
}

func (s *CatalogService) CreateMenu(req MenuCreate) (*domain.Menu, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	menu := &domain.Menu{
		Name:        req.Name,
		CategoryID:  req.CategoryID,
		Price:       req.Price,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsAvailable: true,
	}
	if req.IsAvailable != nil {
		menu.IsAvailable = *req.IsAvailable
	}
	if err := s.menus.CreateMenu(menu); err != nil {
		return nil, err
	}
	s.logger.WithFields(log.Fields{"menu_id": menu.ID, "name": menu.Name, "price": menu.Price}).Info("menu created")
	return menu, nil
}

func (s *CatalogService) ListMenus(f domain.MenuFilter) ([]domain.Menu, error) {
	return s.menus.ListMenus(f)
}

func (s *CatalogService) GetMenu(ctx context.Context, id int) (*domain.Menu, error) {
	if s.cache != nil {
		if m, ok := s.cache.GetMenu(ctx, id); ok {
			return m, nil
		}
	}
	m, err := s.menus.GetMenu(id)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := s.cache.SetMenu(ctx, m); err != nil {
			s.logger.WithError(err).Warn("menu cache write failed")
		}
	}
	return m, nil
}

func (s *CatalogService) UpdateMenu(ctx context.Context, id int, req MenuUpdate) (*domain.Menu, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	m, err := s.menus.UpdateMenu(id, req.Fields())
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return m, nil
}

func (s *CatalogService) DeleteMenu(ctx context.Context, id int) error {
	if err := s.menus.DeleteMenu(id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	s.logger.WithField("menu_id", id).Info("menu deleted")
	return nil
}

func (s *CatalogService) invalidate(ctx context.Context, id int) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.WithError(err).WithField("menu_id", id).Warn("menu cache invalidation failed")
	}
}

var _ CatalogServiceInterface = (*CatalogService)(nil)
