package services

import (
	portsrepo "github.com/giftvote/giftvote_app/internal/core/ports/repositories"
	portssvc "github.com/giftvote/giftvote_app/internal/core/ports/services"
	"github.com/giftvote/giftvote_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Employee = NewEmployeeService(repos.EmployeeRepo)
	container.Gift = NewGiftService(repos.GiftRepo)

	container.Poll = NewPollService(repos.PollRepo, repos.BallotRepo, repos.EmployeeRepo, repos.GiftRepo)
	container.Results = NewResultsService(repos.PollRepo, repos.BallotRepo, repos.EmployeeRepo, repos.GiftRepo)

	container.Token = NewTokenService(cfg)
	container.GoogleOAuth = NewGoogleOAuthHandlerService(cfg)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.PollSvcFacade    = (*pollService)(nil)
	_ portssvc.ResultsSvcFacade = (*resultsService)(nil)
)
