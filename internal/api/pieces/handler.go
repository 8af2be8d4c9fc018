package pieces

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"atelier-app/database"
	"atelier-app/internal/domain/access"
	"atelier-app/internal/domain/pieces"
	"atelier-app/internal/infra/blob"
	"atelier-app/internal/notify"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// ------------------------------
// GET /pieces?userEmail=
// ------------------------------
func ListPieces(c *gin.Context) {
	userEmail := c.Query("userEmail")

	var rows []pieces.Piece
	if err := listQuery(database.DB, userEmail).Find(&rows).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load pieces"})
		return
	}

	out := make([]PieceDTO, 0, len(rows))
	for _, p := range rows {
		out = append(out, toPieceDTO(p))
	}
	c.JSON(http.StatusOK, out)
}

// ------------------------------
// POST /pieces
// ------------------------------
func CreatePiece(c *gin.Context) {
	var req CreatePieceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userEmail, firstName, lastName, photoUrl, temperatureType and clayType are required"})
		return
	}

	p := pieces.Piece{
		UserEmail:       req.UserEmail,
		UserFirstName:   req.FirstName,
		UserLastName:    req.LastName,
		PhotoURL:        req.PhotoURL,
		TemperatureType: req.TemperatureType,
		ClayType:        req.ClayType,
		Notes:           req.Notes,
	}
	if req.BiscuitAlreadyDone {
		// Biscuit was fired before the piece entered the tracker: completed
		// without ever having been requested here.
		now := time.Now()
		p.BiscuitCompleted = true
		p.BiscuitCompletedDate = &now
	}

	if err := database.DB.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create piece"})
		return
	}

	c.JSON(http.StatusCreated, toPieceDTO(p))
}

// ------------------------------
// POST /pieces/firing
// ------------------------------
func RequestFiring(c *gin.Context) {
	var req FiringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pieceId, type ('biscuit' or 'emaillage') and desiredDate are required"})
		return
	}

	desiredDate, err := time.Parse("2006-01-02", req.DesiredDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "desiredDate must be a YYYY-MM-DD date"})
		return
	}

	stage := pieces.Stage(req.Type)

	p, err := findPiece(database.DB, req.PieceID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load piece"})
		return
	}

	// Ordering invariant: glazing only enters the queue once biscuit firing
	// is done. A completed stage cannot be requested again; re-requesting a
	// pending stage just overwrites the desired date.
	if stage == pieces.StageEmaillage && !p.BiscuitCompleted {
		c.JSON(http.StatusConflict, gin.H{"error": "Glaze firing cannot be requested before biscuit firing is completed"})
		return
	}
	if (stage == pieces.StageBiscuit && p.BiscuitCompleted) ||
		(stage == pieces.StageEmaillage && p.EmaillageCompleted) {
		c.JSON(http.StatusConflict, gin.H{"error": "This firing stage is already completed"})
		return
	}

	var updates map[string]interface{}
	if stage == pieces.StageBiscuit {
		updates = map[string]interface{}{
			"biscuit_requested": true,
			"biscuit_date":      desiredDate,
		}
	} else {
		updates = map[string]interface{}{
			"emaillage_requested": true,
			"emaillage_date":      desiredDate,
		}
	}

	res := database.DB.Model(&pieces.Piece{}).Where("id = ?", req.PieceID).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update piece"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}

	p, err = findPiece(database.DB, req.PieceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload piece"})
		return
	}
	c.JSON(http.StatusOK, toPieceDTO(p))
}

// ------------------------------
// POST /pieces/complete
// ------------------------------
func CompleteFiring(c *gin.Context) {
	var req CompleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pieceId and type ('biscuit' or 'emaillage') are required"})
		return
	}

	stage := pieces.Stage(req.Type)

	if _, err := findPiece(database.DB, req.PieceID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load piece"})
		return
	}

	// The requested flag is left as-is; completing twice refreshes the
	// timestamp (last write wins, no optimistic check).
	now := time.Now()
	var updates map[string]interface{}
	if stage == pieces.StageBiscuit {
		updates = map[string]interface{}{
			"biscuit_completed":      true,
			"biscuit_completed_date": now,
		}
	} else {
		updates = map[string]interface{}{
			"emaillage_completed":      true,
			"emaillage_completed_date": now,
		}
	}

	res := database.DB.Model(&pieces.Piece{}).Where("id = ?", req.PieceID).Updates(updates)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update piece"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
		return
	}

	p, err := findPiece(database.DB, req.PieceID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to reload piece"})
		return
	}

	if p.UserEmail != "" {
		notify.Default.FiringCompleted(p.UserEmail, p.ID, stage)
	}

	c.JSON(http.StatusOK, toPieceDTO(p))
}

// ------------------------------
// DELETE /pieces/:id
// ------------------------------
func DeletePiece(c *gin.Context) {
	pieceID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid piece id"})
		return
	}

	callerEmail := c.GetString("email")
	if callerEmail == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	role := c.GetString("role")

	p, err := findPiece(database.DB, uint(pieceID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Piece not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load piece"})
		return
	}

	if !access.CanDeletePiece(role, callerEmail, p.UserEmail) {
		c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		return
	}

	// Best-effort photo cleanup before the row goes away. A failure here is
	// logged and swallowed: an orphaned blob is acceptable, a half-deleted
	// piece is not.
	if p.PhotoURL != "" && blob.Default != nil {
		if err := blob.Default.Delete(c.Request.Context(), p.PhotoURL); err != nil {
			logrus.WithFields(logrus.Fields{
				"piece_id": p.ID,
				"photo":    p.PhotoURL,
			}).WithError(err).Warn("failed to delete photo from blob store")
		}
	}

	res := database.DB.Delete(&pieces.Piece{}, pieceID)
	if res.Error != nil || res.RowsAffected == 0 {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete piece"})
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{
		Success:   true,
		Message:   "Piece deleted",
		DeletedID: pieceID,
	})
}
