package blogservice

import (
	"log/slog"

	httpadapter "inkwell/contexts/publishing/blog-service/adapters/http"
	"inkwell/contexts/publishing/blog-service/adapters/memory"
	"inkwell/contexts/publishing/blog-service/application"
	"inkwell/contexts/publishing/blog-service/ports"
)

// Module is the blog-service composition root exposed to runtime wiring.
type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

// Dependencies captures all runtime ports required by NewModule.
type Dependencies struct {
	Posts  ports.BlogRepository
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Posts:  deps.Posts,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
	}
}

// NewInMemoryModule builds a development/testing module with an in-memory
// post store.
func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Posts:  store,
		Logger: logger,
	})
	module.Store = store
	return module
}
