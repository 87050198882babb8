package api

import (
	"net/http"

	advisorUsecasePkg "wanderlist-backend/internal/advisor/usecase"
	authUsecasePkg "wanderlist-backend/internal/auth/usecase"
	bucketUsecasePkg "wanderlist-backend/internal/bucket/usecase"
	"wanderlist-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// maxBodyBytes caps request bodies at 25 MB so bucket-item updates can carry
// embedded image data.
const maxBodyBytes = 25 << 20

type Handler struct {
	authUsecase    authUsecasePkg.AuthUsecase
	bucketUsecase  bucketUsecasePkg.BucketUsecase
	advisorUsecase advisorUsecasePkg.AdvisorUsecase
	config         *config.Config
}

func NewHandler(
	authUc authUsecasePkg.AuthUsecase,
	bucketUc bucketUsecasePkg.BucketUsecase,
	advisorUc advisorUsecasePkg.AdvisorUsecase,
	cfg *config.Config,
) *Handler {
	return &Handler{
		authUsecase:    authUc,
		bucketUsecase:  bucketUc,
		advisorUsecase: advisorUc,
		config:         cfg,
	}
}

func (h *Handler) Start(addr string) error {
	if h.config.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Request body size cap
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBodyBytes)
		c.Next()
	})

	SetupRoutes(r, h)

	return r.Run(addr)
}
