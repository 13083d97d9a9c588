package service

import (
	"github.com/MKhiriev/go-web-bootstrap/internal/config"
	"github.com/MKhiriev/go-web-bootstrap/internal/logger"
	"github.com/MKhiriev/go-web-bootstrap/internal/store"
	"github.com/MKhiriev/go-web-bootstrap/models"
)

type Services struct {
	AuthService    AuthService
	AppInfoService AppInfoService
	HealthService  HealthService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) *Services {
	pingers := storages.Pingers()

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		AppInfoService: NewAppInfoService(cfg.App, buildInfo, logger),
		HealthService:  NewHealthService(pingers["database"], pingers["sessions"], logger),
	}
}
