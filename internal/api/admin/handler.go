package admin

import (
	"net/http"

	"atelier-app/database"
	"atelier-app/internal/domain/pieces"
	"atelier-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

type AdminUser struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	Provider  string `json:"provider"`
}

// KilnStats mirrors the partitions the admin dashboard renders: the two
// pending firing queues, the active/history split and material breakdowns.
type KilnStats struct {
	TotalPieces      int64            `json:"total_pieces"`
	ActivePieces     int64            `json:"active_pieces"`
	CompletedPieces  int64            `json:"completed_pieces"`
	PendingBiscuit   int64            `json:"pending_biscuit"`
	PendingEmaillage int64            `json:"pending_emaillage"`
	PiecesPerClay    map[string]int64 `json:"pieces_per_clay"`
	PiecesPerTemp    map[string]int64 `json:"pieces_per_temperature"`
}

func AdminDashboard(c *gin.Context) {
	var stats KilnStats

	db := database.DB.Model(&pieces.Piece{})
	if err := db.Count(&stats.TotalPieces).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load stats"})
		return
	}

	database.DB.Model(&pieces.Piece{}).
		Where("biscuit_completed = ? AND emaillage_completed = ?", true, true).
		Count(&stats.CompletedPieces)
	stats.ActivePieces = stats.TotalPieces - stats.CompletedPieces

	database.DB.Model(&pieces.Piece{}).
		Where("biscuit_requested = ? AND biscuit_completed = ?", true, false).
		Count(&stats.PendingBiscuit)
	database.DB.Model(&pieces.Piece{}).
		Where("emaillage_requested = ? AND emaillage_completed = ?", true, false).
		Count(&stats.PendingEmaillage)

	stats.PiecesPerClay = countBy("clay_type")
	stats.PiecesPerTemp = countBy("temperature_type")

	c.JSON(http.StatusOK, stats)
}

func countBy(column string) map[string]int64 {
	type row struct {
		Value string
		Count int64
	}
	var rows []row
	database.DB.Model(&pieces.Piece{}).
		Select(column + " as value, count(*) as count").
		Group(column).
		Find(&rows)

	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[r.Value] = r.Count
	}
	return out
}

func ListAllUsers(c *gin.Context) {
	var all []users.User
	if err := database.DB.Order("id ASC").Find(&all).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load users"})
		return
	}

	adminUsers := make([]AdminUser, 0, len(all))
	for _, u := range all {
		adminUsers = append(adminUsers, AdminUser{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Email:     u.Email,
			Role:      u.Role,
			Provider:  u.AuthProvider,
		})
	}

	c.JSON(http.StatusOK, adminUsers)
}
