package drafts

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/rpg-content-admin/internal/repositories/drafts TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTime struct{}

func (realTime) Now() time.Time {
	return time.Now().UTC()
}

// RealTimeProvider returns the wall clock in UTC
func RealTimeProvider() TimeProvider {
	return realTime{}
}
