package accountservice

import (
	"log/slog"
	"time"

	bcryptadapter "inkwell/contexts/identity/account-service/adapters/bcrypt"
	httpadapter "inkwell/contexts/identity/account-service/adapters/http"
	"inkwell/contexts/identity/account-service/adapters/memory"
	tokenadapter "inkwell/contexts/identity/account-service/adapters/token"
	"inkwell/contexts/identity/account-service/application"
	"inkwell/contexts/identity/account-service/ports"
)

// Module is the account-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports/config required by NewModule.
type Dependencies struct {
	Profiles ports.ProfileRepository
	Hasher   ports.PasswordHasher
	Tokens   ports.TokenCodec
	Logger   *slog.Logger
}

// NewModule wires the account service and its transport handler using
// explicit ports.
func NewModule(deps Dependencies) Module {
	service := application.Service{
		Profiles: deps.Profiles,
		Hasher:   deps.Hasher,
		Tokens:   deps.Tokens,
		Logger:   deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// profile store and a fixed signing key.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Profiles: store,
		Hasher:   bcryptadapter.Hasher{},
		Tokens:   tokenadapter.NewCodec([]byte("inkwell-test-key"), 24*time.Hour),
		Logger:   logger,
	})
	module.Store = store
	return module
}
