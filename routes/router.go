package routes

import (
	"net/http"

	"techsphere-api/config"
	"techsphere-api/handlers"
	"techsphere-api/middleware"
	"techsphere-api/models"
	"techsphere-api/pagination"
	"techsphere-api/repositories"
	"techsphere-api/services"
	"techsphere-api/validation"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Services bundles the service layer built over one database handle.
type Services struct {
	Tokens   services.TokenService
	Auth     services.AuthService
	Users    services.UserService
	Articles services.ArticleService
	Comments services.CommentService
}

// NewServices wires repositories and services for db.
func NewServices(db *gorm.DB, cfg *config.Config) *Services {
	validator := validation.New()
	hasher := services.NewPasswordHasher(cfg.BcryptCost)
	tokens := services.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	articleRepo := repositories.NewArticleRepository(db)
	commentRepo := repositories.NewCommentRepository(db)

	return &Services{
		Tokens:   tokens,
		Auth:     services.NewAuthService(userRepo, hasher, tokens, validator),
		Users:    services.NewUserService(userRepo, hasher, validator),
		Articles: services.NewArticleService(articleRepo, validator),
		Comments: services.NewCommentService(commentRepo, articleRepo, validator),
	}
}

// NewRouter builds the gin engine serving the JSON API.
func NewRouter(cfg *config.Config, svc *Services) *gin.Engine {
	pages := pagination.Parser{DefaultLimit: cfg.DefaultLimit, MaxLimit: cfg.MaxLimit}

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(svc.Auth, handlers.CookieOptions{
		MaxAge: cfg.CookieMaxAge,
		Secure: cfg.IsProduction(),
	})
	userHandler := handlers.NewUserHandler(svc.Users, pages)
	articleHandler := handlers.NewArticleHandler(svc.Articles, pages)
	commentHandler := handlers.NewCommentHandler(svc.Comments, pages)

	requireAuth := middleware.AuthMiddleware(svc.Tokens)
	requireAdmin := middleware.RequireAdmin()

	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestLogger(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.RequestTimeout(cfg.RequestTimeout),
		middleware.Gateway(svc.Tokens),
	)

	router.NoRoute(func(c *gin.Context) {
		userHandler.Helper.SendNotFoundError(c, models.MessageRouteNotFound)
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	api := router.Group("/api")
	{
		articles := api.Group("/articles")
		{
			articles.GET("", articleHandler.GetArticles)
			articles.GET("/search", articleHandler.SearchArticles)
			articles.GET("/count", articleHandler.CountArticles)
			articles.GET("/:id", articleHandler.GetArticle)
			articles.POST("", requireAuth, articleHandler.CreateArticle)
			articles.PUT("/:id", requireAuth, articleHandler.UpdateArticle)
			articles.DELETE("/:id", requireAuth, articleHandler.DeleteArticle)
		}

		comments := api.Group("/comments")
		{
			comments.GET("/count", commentHandler.CountComments)
			comments.GET("", requireAuth, commentHandler.GetComments)
			comments.POST("", requireAuth, commentHandler.CreateComment)
			comments.PUT("/:id", requireAuth, commentHandler.UpdateComment)
			comments.DELETE("/:id", requireAuth, commentHandler.DeleteComment)
		}

		user := api.Group("/user")
		{
			user.POST("/register", authHandler.Register)
			user.POST("/login", authHandler.Login)
			user.GET("/logout", authHandler.Logout)
			user.GET("/count", userHandler.CountUsers)

			profile := user.Group("/profile", requireAuth)
			{
				profile.GET("/:userId", userHandler.GetProfile)
				profile.PUT("/:userId", userHandler.UpdateProfile)
				profile.DELETE("/:userId", userHandler.DeleteProfile)
			}

			user.GET("", requireAuth, requireAdmin, userHandler.ListUsers)
			user.POST("", requireAuth, requireAdmin, userHandler.CreateUser)
		}
	}

	return router
}
