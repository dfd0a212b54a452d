package xero

import (
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	"github.com/edinstair/property_transition_app/pkg/xeroapi"
)

// NewRepositoryProvider wires every accounting API repository over one
// shared client.
func NewRepositoryProvider(client *xeroapi.Client) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ContactRepo:  newContactRepository(client),
		InvoiceRepo:  newInvoiceRepository(client),
		TemplateRepo: newRepeatingInvoiceRepository(client),
	}
}
