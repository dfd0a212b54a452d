package services

import (
	portsrepo "github.com/edinstair/property_transition_app/internal/core/ports/repositories"
	portssvc "github.com/edinstair/property_transition_app/internal/core/ports/services"
	"github.com/edinstair/property_transition_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Auth = NewAuthService(cfg)
	container.Contacts = NewContactTransitionService(repos.ContactRepo)
	container.Invoices = NewInvoiceReassignmentService(repos.InvoiceRepo)
	container.Templates = NewTemplateTransferService(repos.TemplateRepo)
	container.Previous = NewPreviousContactService(repos.ContactRepo)
	container.Split = NewInvoiceSplitService(repos.InvoiceRepo)
	container.Debug = NewDebugQueryService(repos.ContactRepo, repos.InvoiceRepo)

	// The workflow orchestrator composes the step services behind their
	// port interfaces.
	container.Workflow = NewTransitionWorkflowService(
		container.Contacts,
		container.Invoices,
		container.Templates,
		container.Previous,
		container.Split,
	)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.AuthSvc                = (*authService)(nil)
	_ portssvc.ContactTransitionSvc   = (*contactTransitionService)(nil)
	_ portssvc.InvoiceReassignmentSvc = (*invoiceReassignmentService)(nil)
	_ portssvc.TemplateTransferSvc    = (*templateTransferService)(nil)
	_ portssvc.PreviousContactSvc     = (*previousContactService)(nil)
	_ portssvc.InvoiceSplitSvc        = (*invoiceSplitService)(nil)
	_ portssvc.TransitionWorkflowSvc  = (*transitionWorkflowService)(nil)
	_ portssvc.DebugQuerySvc          = (*debugQueryService)(nil)
)
