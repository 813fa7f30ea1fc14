package logadapter

import (
	"github.com/athebyme/request-router/internal/core/domain"
	"github.com/athebyme/request-router/internal/core/ports"
)

// AdmissionLogger реализует domain.AdmissionObserver: каждое событие admission control
// превращается в запись лога с адресом и текущей нагрузкой
type AdmissionLogger struct {
	logger ports.Logger
}

func NewAdmissionLogger(logger ports.Logger) *AdmissionLogger {
	return &AdmissionLogger{logger: logger.With("component", "Admission")}
}

func (a *AdmissionLogger) Admitted(d *domain.Destination, inFlight int64) {
	a.logger.Info("Request accepted", "destination", d.Address(), "in_flight", inFlight, "capacity", d.Capacity())
}

func (a *AdmissionLogger) Rejected(d *domain.Destination, inFlight int64) {
	a.logger.Warn("Request rejected, destination overloaded", "destination", d.Address(), "in_flight", inFlight, "capacity", d.Capacity())
}

func (a *AdmissionLogger) Released(d *domain.Destination, inFlight int64) {
	a.logger.Info("Request completed", "destination", d.Address(), "in_flight", inFlight)
}

func (a *AdmissionLogger) CounterFailed(d *domain.Destination, err error) {
	a.logger.Error("Load counter unavailable", "destination", d.Address(), "error", err)
}

var _ domain.AdmissionObserver = (*AdmissionLogger)(nil)
