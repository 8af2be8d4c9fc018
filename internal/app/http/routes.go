package routes

import (
	adminapi "atelier-app/internal/api/admin"
	authapi "atelier-app/internal/api/auth"
	"atelier-app/internal/api/photos"
	piecesapi "atelier-app/internal/api/pieces"
	"atelier-app/internal/api/users"
	"atelier-app/internal/app/http/middleware"
	"atelier-app/internal/infra/blob"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func RegisterRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authapi.Register)
	public.POST("/login", authapi.Login)

	public.GET("/auth/google", authapi.GoogleStart)
	public.GET("/auth/google/callback", authapi.GoogleCallback)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.POST("/change-password", authapi.ChangePassword)

	auth.GET("/pieces", piecesapi.ListPieces)
	auth.POST("/pieces", piecesapi.CreatePiece)
	auth.POST("/pieces/firing", piecesapi.RequestFiring)
	auth.POST("/pieces/complete", piecesapi.CompleteFiring)
	auth.DELETE("/pieces/:id", piecesapi.DeletePiece)

	upload := photos.NewUploadHandler(blob.Default, logrus.StandardLogger())
	auth.POST("/upload-photo", upload.UploadPhoto)

	// Admin routes
	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireRole("admin"))
	admin.GET("/dashboard", adminapi.AdminDashboard)
	admin.GET("/users", adminapi.ListAllUsers)
}
