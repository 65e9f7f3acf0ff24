package module

import dom "showyourapp/internal/services/reputation/domain"

// Ports holds the ports exposed by the reputation module
type Ports struct {
	Ledger dom.Ledger
}
