package notify

import (
	"github.com/sirupsen/logrus"

	"atelier-app/internal/domain/pieces"
)

// Notifier is the outbound boundary for owner notifications. The studio has
// no delivery channel wired up; the shipped implementation only records the
// intent.
type Notifier interface {
	FiringCompleted(ownerEmail string, pieceID uint, stage pieces.Stage)
}

// Default is the process-wide notifier (tests swap it).
var Default Notifier = &LogNotifier{Log: logrus.StandardLogger()}

type LogNotifier struct {
	Log *logrus.Logger
}

func (n *LogNotifier) FiringCompleted(ownerEmail string, pieceID uint, stage pieces.Stage) {
	n.Log.WithFields(logrus.Fields{
		"piece_id": pieceID,
		"stage":    string(stage),
		"owner":    ownerEmail,
	}).Info("firing completed, owner should be notified")
}
