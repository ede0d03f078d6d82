package handlers

import (
	"github.com/calorelia/calorelia-bot/internal/interfaces"
)

// Dependencies holds all service dependencies for handlers
type Dependencies struct {
	LedgerSvc   interfaces.LedgerServiceInterface
	GoalsSvc    interfaces.GoalsServiceInterface
	HistorySvc  interfaces.HistoryServiceInterface
	AISvc       interfaces.AIServiceInterface
	ImportSvc   interfaces.ImportServiceInterface
	Credentials interfaces.CredentialStoreInterface
}
