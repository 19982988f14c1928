package ports

import "socialite/internal/core/domain"

type SettingsPort interface {
	Load() (domain.Settings, error)
	Save(settings domain.Settings) error
}
