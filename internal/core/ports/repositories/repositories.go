package repositories

// RepositoryProvider holds all accounting-API port interfaces needed by
// services. This makes passing dependencies to the service container
// constructor cleaner.
type RepositoryProvider struct {
	ContactRepo  ContactRepositoryFacade
	InvoiceRepo  InvoiceRepositoryFacade
	TemplateRepo RepeatingInvoiceRepositoryFacade
}
