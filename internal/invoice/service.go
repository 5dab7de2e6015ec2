package invoice

import (
	"log/slog"
	"time"

	"github.com/mauriciopaint/backoffice/internal"
)

const companyName = "Mauricio Paint and Dry Wall"

type RepositoryAPI interface {
	CreateProject(project *Project) error
	GetProjectByID(id int64) (*Project, error)
	ListProjects() ([]*Project, error)
	CreateInvoice(invoice *Invoice) error
	GetInvoiceByID(id int64) (*Invoice, error)
	GetInvoiceByNumber(number string) (*Invoice, error)
	ListInvoices() ([]*Invoice, error)
}

// Renderer turns an invoice data context into document bytes. The service
// supplies only the context; template and layout live behind the interface.
type Renderer interface {
	RenderInvoice(ctx RenderContext) ([]byte, error)
}

type Service struct {
	repo     RepositoryAPI
	renderer Renderer
	logger   *slog.Logger
}

func NewService(repo RepositoryAPI, renderer Renderer, logger *slog.Logger) *Service {
	return &Service{
		repo:     repo,
		renderer: renderer,
		logger:   logger,
	}
}

func (s *Service) CreateProject(dto CreateProjectDTO) (*Project, error) {
	parsed, err := dto.Validate()
	if err != nil {
		return nil, err
	}

	p := &Project{
		Name:          dto.Name,
		MaterialsCost: parsed.materials,
		LaborCost:     parsed.labor,
		AmountCharged: parsed.charged,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateProject(p); err != nil {
		s.logger.Error("failed to create project", "name", dto.Name, "error", err)
		return nil, internal.NewInternalError("failed to create project", err)
	}

	s.logger.Info("project created", "project_id", p.ID, "name", p.Name)
	return p, nil
}

func (s *Service) ListProjects() ([]ProjectResponse, error) {
	projects, err := s.repo.ListProjects()
	if err != nil {
		s.logger.Error("failed to list projects", "error", err)
		return nil, internal.NewInternalError("failed to list projects", err)
	}

	responses := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		responses = append(responses, toProjectResponse(p))
	}
	return responses, nil
}

func (s *Service) CreateInvoice(dto CreateInvoiceDTO) (*Invoice, error) {
	amount, err := dto.Validate()
	if err != nil {
		return nil, err
	}

	project, err := s.repo.GetProjectByID(dto.ProjectID)
	if err != nil {
		return nil, internal.NewInternalError("failed to get project", err)
	}
	if project == nil {
		return nil, internal.ErrProjectNotFound
	}

	existing, err := s.repo.GetInvoiceByNumber(dto.InvoiceNumber)
	if err != nil {
		return nil, internal.NewInternalError("failed to check invoice number", err)
	}
	if existing != nil {
		return nil, internal.ErrDuplicateInvoice
	}

	inv := &Invoice{
		ProjectID:     dto.ProjectID,
		InvoiceNumber: dto.InvoiceNumber,
		IssueDate:     time.Now(),
		TotalAmount:   amount,
		CreatedAt:     time.Now(),
	}

	if err := s.repo.CreateInvoice(inv); err != nil {
		s.logger.Error("failed to create invoice", "invoice_number", dto.InvoiceNumber, "error", err)
		return nil, internal.NewInternalError("failed to create invoice", err)
	}

	s.logger.Info("invoice created",
		"invoice_id", inv.ID,
		"invoice_number", inv.InvoiceNumber,
		"project_id", inv.ProjectID)

	return inv, nil
}

func (s *Service) ListInvoices() ([]InvoiceResponse, error) {
	invoices, err := s.repo.ListInvoices()
	if err != nil {
		s.logger.Error("failed to list invoices", "error", err)
		return nil, internal.NewInternalError("failed to list invoices", err)
	}

	responses := make([]InvoiceResponse, 0, len(invoices))
	for _, i := range invoices {
		responses = append(responses, toInvoiceResponse(i))
	}
	return responses, nil
}

// RenderInvoicePDF produces the downloadable document for an invoice,
// synchronously relative to the request; renderer failures surface as the
// request error.
func (s *Service) RenderInvoicePDF(invoiceID int64) ([]byte, string, error) {
	inv, err := s.repo.GetInvoiceByID(invoiceID)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to get invoice", err)
	}
	if inv == nil {
		return nil, "", internal.ErrInvoiceNotFound
	}

	project, err := s.repo.GetProjectByID(inv.ProjectID)
	if err != nil {
		return nil, "", internal.NewInternalError("failed to get project", err)
	}
	if project == nil {
		return nil, "", internal.ErrProjectNotFound
	}

	pdf, err := s.renderer.RenderInvoice(RenderContext{
		InvoiceID:     inv.ID,
		InvoiceNumber: inv.InvoiceNumber,
		IssueDate:     inv.IssueDate.Format(DateLayout),
		ProjectName:   project.Name,
		MaterialsCost: project.MaterialsCost.StringFixed(2),
		LaborCost:     project.LaborCost.StringFixed(2),
		TotalAmount:   inv.TotalAmount.StringFixed(2),
		CompanyName:   companyName,
	})
	if err != nil {
		s.logger.Error("invoice rendering failed", "invoice_id", invoiceID, "error", err)
		return nil, "", internal.NewInternalError("invoice rendering failed", err)
	}

	filename := "invoice_" + inv.InvoiceNumber + ".pdf"
	return pdf, filename, nil
}
