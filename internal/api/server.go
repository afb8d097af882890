package api

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerfiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"golang.org/x/time/rate"
	"gorm.io/gorm"

	"github.com/membora/membora-api/docs"
	v1 "github.com/membora/membora-api/internal/api/handler/v1"
	"github.com/membora/membora-api/internal/api/middleware"
	"github.com/membora/membora-api/internal/config"
	"github.com/membora/membora-api/internal/repository"
	"github.com/membora/membora-api/internal/repository/dao"
	"github.com/membora/membora-api/internal/service"
)

type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, db *gorm.DB) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	authHandler := s.initAuthHandler(db)
	membreHandler := s.initMembreHandler(db)
	evenementHandler := s.initEvenementHandler(db)
	trancheHandler := s.initTrancheHandler(db)
	badgeHandler := s.initBadgeHandler(db)
	inscriptionHandler := s.initInscriptionHandler(db)
	articleHandler := s.initArticleHandler(db)
	s.MountHandlers(authHandler, membreHandler, evenementHandler, trancheHandler, badgeHandler, inscriptionHandler, articleHandler)

	return s
}

func (s *Server) initAuthHandler(db *gorm.DB) *v1.AuthHandler {
	membreDAO := dao.NewMembreDAO(db)
	repo := repository.NewMembreRepository(membreDAO)
	svc := service.NewAuthService(repo)
	handler := v1.NewAuthHandler(s.Config.API, svc)

	return handler
}

func (s *Server) initMembreHandler(db *gorm.DB) *v1.MembreHandler {
	membreDAO := dao.NewMembreDAO(db)
	repo := repository.NewMembreRepository(membreDAO)
	svc := service.NewMembreService(repo)
	handler := v1.NewMembreHandler(svc)

	return handler
}

func (s *Server) initEvenementHandler(db *gorm.DB) *v1.EvenementHandler {
	evenementDAO := dao.NewEvenementDAO(db)
	repo := repository.NewEvenementRepository(evenementDAO)
	svc := service.NewEvenementService(repo)
	handler := v1.NewEvenementHandler(svc)

	return handler
}

func (s *Server) initTrancheHandler(db *gorm.DB) *v1.TrancheHandler {
	trancheDAO := dao.NewTrancheDAO(db)
	repo := repository.NewTrancheRepository(trancheDAO)
	evenementRepo := repository.NewEvenementRepository(dao.NewEvenementDAO(db))
	svc := service.NewTrancheService(repo, evenementRepo)
	handler := v1.NewTrancheHandler(svc)

	return handler
}

func (s *Server) initBadgeHandler(db *gorm.DB) *v1.BadgeHandler {
	badgeDAO := dao.NewBadgeDAO(db)
	repo := repository.NewBadgeRepository(badgeDAO)
	membreRepo := repository.NewMembreRepository(dao.NewMembreDAO(db))
	svc := service.NewBadgeService(repo, membreRepo)
	handler := v1.NewBadgeHandler(svc)

	return handler
}

func (s *Server) initInscriptionHandler(db *gorm.DB) *v1.InscriptionHandler {
	inscriptionDAO := dao.NewInscriptionDAO(db)
	repo := repository.NewInscriptionRepository(inscriptionDAO)
	trancheRepo := repository.NewTrancheRepository(dao.NewTrancheDAO(db))
	badgeRepo := repository.NewBadgeRepository(dao.NewBadgeDAO(db))
	svc := service.NewInscriptionService(repo, trancheRepo, badgeRepo)
	handler := v1.NewInscriptionHandler(svc)

	return handler
}

func (s *Server) initArticleHandler(db *gorm.DB) *v1.ArticleHandler {
	articleDAO := dao.NewArticleDAO(db)
	repo := repository.NewArticleRepository(articleDAO)
	svc := service.NewArticleService(repo)
	handler := v1.NewArticleHandler(svc)

	return handler
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.API.AllowedCORSDomains))
	s.Router.Use(middleware.RateLimit(rate.Limit(100), 200))
	s.Router.Use(middleware.Metrics())
}

func (s *Server) MountHandlers(
	authHandler *v1.AuthHandler,
	membreHandler *v1.MembreHandler,
	evenementHandler *v1.EvenementHandler,
	trancheHandler *v1.TrancheHandler,
	badgeHandler *v1.BadgeHandler,
	inscriptionHandler *v1.InscriptionHandler,
	articleHandler *v1.ArticleHandler,
) {
	auth := s.Router.Group("")
	{
		auth.POST("/auth/signup", authHandler.HandleSignup)
		auth.POST("/auth/login", authHandler.HandleLogin)
	}

	verifyJWT := middleware.NewAuthenticator(s.Config.API.JWTSigningKey).VerifyJWT()
	manageOnly := middleware.RequireRoles("responsable", "sous-admin")

	authenticated := s.Router.Group("", verifyJWT)
	{
		authenticated.POST("/inscriptions", inscriptionHandler.HandleCreateInscription)
		authenticated.DELETE("/inscriptions/:id", inscriptionHandler.HandleDeleteInscription)
		authenticated.GET("/inscriptions/tranche/:trancheID", inscriptionHandler.HandleGetInscriptionsByTranche)
		authenticated.GET("/inscriptions/membre/:membreID", inscriptionHandler.HandleGetInscriptionsByMembre)

		authenticated.GET("/tranches/event/:eventID", trancheHandler.HandleGetTranchesByEvenement)
		authenticated.GET("/badges/membre/:membreID", badgeHandler.HandleGetBadgesByMembre)

		authenticated.GET("/evenements", evenementHandler.HandleListEvenements)
		authenticated.GET("/evenements/:id", evenementHandler.HandleGetEvenement)
		authenticated.GET("/articles", articleHandler.HandleListArticles)
		authenticated.GET("/articles/:id", articleHandler.HandleGetArticle)
		authenticated.GET("/membres/:id", membreHandler.HandleGetMembre)
	}

	managed := s.Router.Group("", verifyJWT, manageOnly)
	{
		managed.POST("/inscriptions/:id/valider", inscriptionHandler.HandleValiderInscription)

		managed.POST("/tranches", trancheHandler.HandleCreateTranche)
		managed.PUT("/tranches/:id", trancheHandler.HandleUpdateTranche)
		managed.DELETE("/tranches/:id", trancheHandler.HandleDeleteTranche)

		managed.POST("/badges", badgeHandler.HandleCreateBadge)

		managed.POST("/evenements", evenementHandler.HandleCreateEvenement)
		managed.PUT("/evenements/:id", evenementHandler.HandleUpdateEvenement)
		managed.DELETE("/evenements/:id", evenementHandler.HandleDeleteEvenement)

		managed.POST("/articles", articleHandler.HandleCreateArticle)
		managed.PUT("/articles/:id", articleHandler.HandleUpdateArticle)
		managed.DELETE("/articles/:id", articleHandler.HandleDeleteArticle)

		managed.GET("/membres", membreHandler.HandleListMembres)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
	s.Router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Setup Swagger UI.
	docs.SwaggerInfo.Host = s.Config.API.BaseURL
	docs.SwaggerInfo.BasePath = "/"
	docs.SwaggerInfo.Title = "Membora API"
	docs.SwaggerInfo.Description = "Multi-tenant event and attendance management API."
	docs.SwaggerInfo.Version = "1.0"
	s.Router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerfiles.Handler))
}
