package app

import (
	"fmt"

	authHTTP "github.com/ativoshub/ativos/internal/auth/http"
	authService "github.com/ativoshub/ativos/internal/auth/service"
	authUsecase "github.com/ativoshub/ativos/internal/auth/usecase"
	userRepository "github.com/ativoshub/ativos/internal/user/repository"
)

// TokenService returns the JWT token service.
func (c *Container) TokenService() (authService.TokenService, error) {
	var err error
	c.tokenServiceInit.Do(func() {
		c.tokenService, err = authService.NewTokenService(
			c.config.JWTSecret,
			c.config.AccessTokenExpiration,
			c.config.RefreshTokenExpiration,
		)
		if err != nil {
			c.initErrors["tokenService"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenService"]; exists {
		return nil, storedErr
	}
	return c.tokenService, nil
}

// AuthUserRepository returns the user repository narrowed to the operations
// the auth module needs.
func (c *Container) AuthUserRepository() (authUsecase.UserRepository, error) {
	var err error
	c.authUserRepoInit.Do(func() {
		c.authUserRepo, err = c.initAuthUserRepository()
		if err != nil {
			c.initErrors["authUserRepo"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUserRepo"]; exists {
		return nil, storedErr
	}
	return c.authUserRepo, nil
}

// AuthUseCase returns the authentication use case.
func (c *Container) AuthUseCase() (authUsecase.AuthUseCase, error) {
	var err error
	c.authUseCaseInit.Do(func() {
		c.authUseCase, err = c.initAuthUseCase()
		if err != nil {
			c.initErrors["authUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["authUseCase"]; exists {
		return nil, storedErr
	}
	return c.authUseCase, nil
}

// TokenHandler returns the token HTTP handler.
func (c *Container) TokenHandler() (*authHTTP.TokenHandler, error) {
	var err error
	c.tokenHandlerInit.Do(func() {
		var useCase authUsecase.AuthUseCase
		useCase, err = c.AuthUseCase()
		if err != nil {
			c.initErrors["tokenHandler"] = err
			return
		}
		c.tokenHandler = authHTTP.NewTokenHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["tokenHandler"]; exists {
		return nil, storedErr
	}
	return c.tokenHandler, nil
}

// PasswordHandler returns the secret-question password recovery handler.
func (c *Container) PasswordHandler() (*authHTTP.PasswordHandler, error) {
	var err error
	c.passwordHandlerInit.Do(func() {
		var useCase authUsecase.AuthUseCase
		useCase, err = c.AuthUseCase()
		if err != nil {
			c.initErrors["passwordHandler"] = err
			return
		}
		c.passwordHandler = authHTTP.NewPasswordHandler(useCase, c.Logger())
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["passwordHandler"]; exists {
		return nil, storedErr
	}
	return c.passwordHandler, nil
}

// initAuthUserRepository creates the user repository for the auth module.
func (c *Container) initAuthUserRepository() (authUsecase.UserRepository, error) {
	db, err := c.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database for auth user repository: %w", err)
	}

	switch c.config.DBDriver {
	case "mysql":
		return userRepository.NewMySQLUserRepository(db), nil
	case "postgres":
		return userRepository.NewPostgreSQLUserRepository(db), nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", c.config.DBDriver)
	}
}

// initAuthUseCase creates the auth use case with metrics instrumentation.
func (c *Container) initAuthUseCase() (authUsecase.AuthUseCase, error) {
	userRepo, err := c.AuthUserRepository()
	if err != nil {
		return nil, fmt.Errorf("failed to get user repository for auth use case: %w", err)
	}

	tokenService, err := c.TokenService()
	if err != nil {
		return nil, fmt.Errorf("failed to get token service for auth use case: %w", err)
	}

	useCase, err := authUsecase.NewAuthUseCase(userRepo, tokenService)
	if err != nil {
		return nil, fmt.Errorf("failed to create auth use case: %w", err)
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for auth use case: %w", err)
	}

	return authUsecase.NewAuthUseCaseWithMetrics(useCase, businessMetrics), nil
}
