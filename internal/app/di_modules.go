package app

import (
	"sync"

	authHTTP "github.com/ativoshub/ativos/internal/auth/http"
	authService "github.com/ativoshub/ativos/internal/auth/service"
	authUsecase "github.com/ativoshub/ativos/internal/auth/usecase"
	inventoryHTTP "github.com/ativoshub/ativos/internal/inventory/http"
	inventoryUsecase "github.com/ativoshub/ativos/internal/inventory/usecase"
	userHTTP "github.com/ativoshub/ativos/internal/user/http"
	userUsecase "github.com/ativoshub/ativos/internal/user/usecase"
)

// moduleContainer holds the per-module dependencies of the container. The
// accessors live in di_auth.go, di_user.go and di_inventory.go.
type moduleContainer struct {
	// Auth
	tokenService    authService.TokenService
	authUserRepo    authUsecase.UserRepository
	authUseCase     authUsecase.AuthUseCase
	tokenHandler    *authHTTP.TokenHandler
	passwordHandler *authHTTP.PasswordHandler

	// Users
	userRepo    userUsecase.UserRepository
	userUseCase userUsecase.UseCase
	userHandler *userHTTP.UserHandler

	// Inventory
	categoryRepo           inventoryUsecase.CategoryRepository
	fieldDefinitionRepo    inventoryUsecase.FieldDefinitionRepository
	assetRepo              inventoryUsecase.AssetRepository
	categoryUseCase        inventoryUsecase.CategoryUseCase
	fieldDefinitionUseCase inventoryUsecase.FieldDefinitionUseCase
	assetUseCase           inventoryUsecase.AssetUseCase
	categoryHandler        *inventoryHTTP.CategoryHandler
	fieldDefinitionHandler *inventoryHTTP.FieldDefinitionHandler
	assetHandler           *inventoryHTTP.AssetHandler

	tokenServiceInit           sync.Once
	authUserRepoInit           sync.Once
	authUseCaseInit            sync.Once
	tokenHandlerInit           sync.Once
	passwordHandlerInit        sync.Once
	userRepoInit               sync.Once
	userUseCaseInit            sync.Once
	userHandlerInit            sync.Once
	categoryRepoInit           sync.Once
	fieldDefinitionRepoInit    sync.Once
	assetRepoInit              sync.Once
	categoryUseCaseInit        sync.Once
	fieldDefinitionUseCaseInit sync.Once
	assetUseCaseInit           sync.Once
	categoryHandlerInit        sync.Once
	fieldDefinitionHandlerInit sync.Once
	assetHandlerInit           sync.Once
}
