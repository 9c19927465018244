package app

import (
	"fmt"

	inventoryHTTP "github.com/ativoshub/ativos/internal/inventory/http"
	inventoryRepository "github.com/ativoshub/ativos/internal/inventory/repository"
	inventoryUsecase "github.com/ativoshub/ativos/internal/inventory/usecase"
)

// CategoryRepository returns the category repository instance.
func (c *Container) CategoryRepository() (inventoryUsecase.CategoryRepository, error) {
	var err error
	c.categoryRepoInit.Do(func() {
		c.categoryRepo, err = c.initCategoryRepository()
		if err != nil {
			c.initErrors["categoryRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryRepo"]; exists {
		return nil, storedErr
	}
	return c.categoryRepo, nil
}

// FieldDefinitionRepository returns the field definition repository instance.
func (c *Container) FieldDefinitionRepository() (inventoryUsecase.FieldDefinitionRepository, error) {
	var err error
	c.fieldDefinitionRepoInit.Do(func() {
		c.fieldDefinitionRepo, err = c.initFieldDefinitionRepository()
		if err != nil {
			c.initErrors["fieldDefinitionRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldDefinitionRepo"]; exists {
		return nil, storedErr
	}
	return c.fieldDefinitionRepo, nil
}

// AssetRepository returns the asset repository instance.
func (c *Container) AssetRepository() (inventoryUsecase.AssetRepository, error) {
	var err error
	c.assetRepoInit.Do(func() {
		c.assetRepo, err = c.initAssetRepository()
		if err != nil {
			c.initErrors["assetRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetRepo"]; exists {
		return nil, storedErr
	}
	return c.assetRepo, nil
}

// CategoryUseCase returns the category use case instance.
func (c *Container) CategoryUseCase() (inventoryUsecase.CategoryUseCase, error) {
	var err error
	c.categoryUseCaseInit.Do(func() {
		c.categoryUseCase, err = c.initCategoryUseCase()
		if err != nil {
			c.initErrors["categoryUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryUseCase"]; exists {
		return nil, storedErr
	}
	return c.categoryUseCase, nil
}

// FieldDefinitionUseCase returns the field definition use case instance.
func (c *Container) FieldDefinitionUseCase() (inventoryUsecase.FieldDefinitionUseCase, error) {
	var err error
	c.fieldDefinitionUseCaseInit.Do(func() {
		c.fieldDefinitionUseCase, err = c.initFieldDefinitionUseCase()
		if err != nil {
			c.initErrors["fieldDefinitionUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldDefinitionUseCase"]; exists {
		return nil, storedErr
	}
	return c.fieldDefinitionUseCase, nil
}

// AssetUseCase returns the asset use case instance.
func (c *Container) AssetUseCase() (inventoryUsecase.AssetUseCase, error) {
	var err error
	c.assetUseCaseInit.Do(func() {
		c.assetUseCase, err = c.initAssetUseCase()
		if err != nil {
			c.initErrors["assetUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetUseCase"]; exists {
		return nil, storedErr
	}
	return c.assetUseCase, nil
}

// CategoryHandler returns the category HTTP handler.
func (c *Container) CategoryHandler() (*inventoryHTTP.CategoryHandler, error) {
	var err error
	c.categoryHandlerInit.Do(func() {
		var useCase inventoryUsecase.CategoryUseCase
		useCase, err = c.CategoryUseCase()
		if err != nil {
			c.initErrors["categoryHandler"] = err
			return
		}
		c.categoryHandler = inventoryHTTP.NewCategoryHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["categoryHandler"]; exists {
		return nil, storedErr
	}
	return c.categoryHandler, nil
}

// FieldDefinitionHandler returns the field definition HTTP handler.
func (c *Container) FieldDefinitionHandler() (*inventoryHTTP.FieldDefinitionHandler, error) {
	var err error
	c.fieldDefinitionHandlerInit.Do(func() {
		var useCase inventoryUsecase.FieldDefinitionUseCase
		useCase, err = c.FieldDefinitionUseCase()
		if err != nil {
			c.initErrors["fieldDefinitionHandler"] = err
			return
		}
		c.fieldDefinitionHandler = inventoryHTTP.NewFieldDefinitionHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["fieldDefinitionHandler"]; exists {
		return nil, storedErr
	}
	return c.fieldDefinitionHandler, nil
}

// AssetHandler returns the asset HTTP handler.
func (c *Container) AssetHandler() (*inventoryHTTP.AssetHandler, error) {
	var err error
	c.assetHandlerInit.Do(func() {
		var useCase inventoryUsecase.AssetUseCase
		useCase, err = c.AssetUseCase()
		if err != nil {
			c.initErrors["assetHandler"] = err
			return
		}
		c.assetHandler = inventoryHTTP.NewAssetHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["assetHandler"]; exists {
		return nil, storedErr
	}
	return c.assetHandler, nil
}

// initCategoryRepository creates the category repository instance.
func (c *Container) initCategoryRepository() (inventoryUsecase.CategoryRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for category repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return inventoryRepository.NewMySQLCategoryRepository(db), nil
	case "postgres":
		return inventoryRepository.NewPostgreSQLCategoryRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initFieldDefinitionRepository creates the field definition repository instance.
func (c *Container) initFieldDefinitionRepository() (inventoryUsecase.FieldDefinitionRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for field definition repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return inventoryRepository.NewMySQLFieldDefinitionRepository(db), nil
	case "postgres":
		return inventoryRepository.NewPostgreSQLFieldDefinitionRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAssetRepository creates the asset repository instance.
func (c *Container) initAssetRepository() (inventoryUsecase.AssetRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for asset repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return inventoryRepository.NewMySQLAssetRepository(db), nil
	case "postgres":
		return inventoryRepository.NewPostgreSQLAssetRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initCategoryUseCase creates the category use case with metrics instrumentation.
func (c *Container) initCategoryUseCase() (inventoryUsecase.CategoryUseCase, error) {
	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for category use case: %w", err)
	}

	fieldDefRepo, err := c.FieldDefinitionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get field definition repository for category use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for category use case: %w", err)
	}

	useCase := inventoryUsecase.NewCategoryUseCase(categoryRepo, fieldDefRepo)
	return inventoryUsecase.NewCategoryUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initFieldDefinitionUseCase creates the field definition use case with metrics instrumentation.
func (c *Container) initFieldDefinitionUseCase() (inventoryUsecase.FieldDefinitionUseCase, error) {
	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for field definition use case: %w", err)
	}

	fieldDefRepo, err := c.FieldDefinitionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get field definition repository for field definition use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for field definition use case: %w", err)
	}

	useCase := inventoryUsecase.NewFieldDefinitionUseCase(categoryRepo, fieldDefRepo)
	return inventoryUsecase.NewFieldDefinitionUseCaseWithMetrics(useCase, businessMetrics), nil
}

// initAssetUseCase creates the asset use case with metrics instrumentation.
func (c *Container) initAssetUseCase() (inventoryUsecase.AssetUseCase, error) {
	txManager, err := c.TxManager()
	if err != nil {
		return nil, fmt.Errorf("failed to get tx manager for asset use case: %w", err)
	}

	assetRepo, err := c.AssetRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get asset repository for asset use case: %w", err)
	}

	categoryRepo, err := c.CategoryRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get category repository for asset use case: %w", err)
	}

	fieldDefRepo, err := c.FieldDefinitionRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get field definition repository for asset use case: %w", err)
	}

	outboxRepo, err := c.OutboxRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get outbox repository for asset use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for asset use case: %w", err)
	}

	useCase := inventoryUsecase.NewAssetUseCase(txManager, assetRepo, categoryRepo, fieldDefRepo, outboxRepo)
	return inventoryUsecase.NewAssetUseCaseWithMetrics(useCase, businessMetrics), nil
}
