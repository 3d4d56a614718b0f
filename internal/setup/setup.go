package setup

import (
	"github.com/scorp5438/articles-app/internal/config"
	"github.com/scorp5438/articles-app/internal/handler"
	"github.com/scorp5438/articles-app/internal/middleware"
	"github.com/scorp5438/articles-app/internal/render"
	"github.com/scorp5438/articles-app/internal/service"
	"github.com/scorp5438/articles-app/internal/storage/pg"
	"github.com/scorp5438/articles-app/internal/utils/email"
	"github.com/scorp5438/articles-app/internal/utils/jwt"
	"github.com/scorp5438/articles-app/internal/utils/password"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Dispatcher     *email.Dispatcher
	Jwt            jwt.JwtService
}

// SetupDependencies initializes everything the API server needs. The caller
// owns Storage.Cleanup and Dispatcher.Start.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	dispatcher := email.NewDispatcher(email.New(&cfg.Private.Email), cfg.Public.EmailQueueSize)
	jwtService := jwt.New(cfg.JwtKey(), cfg.JwtTTL())
	hasher := password.NewHasher(password.DefaultCost)
	renderer := render.New()

	auth := service.NewAuth(storage, dispatcher, jwtService, hasher, &cfg.Public)
	articles := service.NewArticles(storage, renderer)
	comments := service.NewComments(storage, renderer)
	users := service.NewUsers(storage, hasher)

	h := handler.New(auth, articles, comments, users, cfg)
	authMw := middleware.NewAuth(jwtService, storage, storage)

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: authMw,
		Dispatcher:     dispatcher,
		Jwt:            jwtService,
	}, nil
}
