package services

import (
	"fmt"
	"log/slog"

	"roster-lab/contract"
	"roster-lab/extension"
)

type IExchangeService interface {
	BuildExchange() (*extension.RosterExchange, error)
}

// ExchangeService builds roster exchange fragments from the caller's
// roster on behalf of the message construction flow.
type ExchangeService struct {
	log    *slog.Logger
	source contract.RosterSource
}

func NewExchangeService(log *slog.Logger, source contract.RosterSource) ExchangeService {
	return ExchangeService{log: log, source: source}
}

// BuildExchange copies the current roster entries into a new exchange
// fragment, ready to be attached to an outgoing message.
func (s ExchangeService) BuildExchange() (*extension.RosterExchange, error) {
	exchange, err := extension.NewRosterExchangeFromRoster(s.source)
	if err != nil {
		return nil, fmt.Errorf("build roster exchange: %w", err)
	}
	s.log.Debug("Built roster exchange", "entries", exchange.EntryCount())
	return exchange, nil
}
