package pieces

import (
	"atelier-app/internal/domain/pieces"

	"gorm.io/gorm"
)

// listQuery returns pieces newest first, optionally scoped to one owner.
func listQuery(db *gorm.DB, userEmail string) *gorm.DB {
	q := db.Model(&pieces.Piece{}).Order("submitted_date DESC")
	if userEmail != "" {
		q = q.Where("user_email = ?", userEmail)
	}
	return q
}

func findPiece(db *gorm.DB, id uint) (pieces.Piece, error) {
	var p pieces.Piece
	err := db.First(&p, id).Error
	return p, err
}
