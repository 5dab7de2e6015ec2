package invoice_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/mauriciopaint/backoffice/internal"
	"github.com/mauriciopaint/backoffice/internal/invoice"
	"github.com/mauriciopaint/backoffice/internal/invoice/render"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

func TestInvoiceService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Invoice Service Suite")
}

// MockRepository implements invoice.RepositoryAPI for testing
type MockRepository struct {
	projects map[int64]*invoice.Project
	invoices map[int64]*invoice.Invoice
	nextID   int64
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		projects: make(map[int64]*invoice.Project),
		invoices: make(map[int64]*invoice.Invoice),
	}
}

func (m *MockRepository) CreateProject(p *invoice.Project) error {
	m.nextID++
	p.ID = m.nextID
	m.projects[p.ID] = p
	return nil
}

func (m *MockRepository) GetProjectByID(id int64) (*invoice.Project, error) {
	return m.projects[id], nil
}

func (m *MockRepository) ListProjects() ([]*invoice.Project, error) {
	var result []*invoice.Project
	for _, p := range m.projects {
		result = append(result, p)
	}
	return result, nil
}

func (m *MockRepository) CreateInvoice(i *invoice.Invoice) error {
	m.nextID++
	i.ID = m.nextID
	m.invoices[i.ID] = i
	return nil
}

func (m *MockRepository) GetInvoiceByID(id int64) (*invoice.Invoice, error) {
	return m.invoices[id], nil
}

func (m *MockRepository) GetInvoiceByNumber(number string) (*invoice.Invoice, error) {
	for _, i := range m.invoices {
		if i.InvoiceNumber == number {
			return i, nil
		}
	}
	return nil, nil
}

func (m *MockRepository) ListInvoices() ([]*invoice.Invoice, error) {
	var result []*invoice.Invoice
	for _, i := range m.invoices {
		result = append(result, i)
	}
	return result, nil
}

var _ = Describe("Invoice Service", func() {
	var (
		mockRepo *MockRepository
		service  *invoice.Service
	)

	BeforeEach(func() {
		mockRepo = NewMockRepository()
		logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
		service = invoice.NewService(mockRepo, render.NewHTMLRenderer(), logger)
	})

	createProject := func() *invoice.Project {
		p, err := service.CreateProject(invoice.CreateProjectDTO{
			Name:          "Lakeside Drive Repaint",
			MaterialsCost: "850.00",
			LaborCost:     "1200.00",
			AmountCharged: "2600.00",
		})
		Expect(err).NotTo(HaveOccurred())
		return p
	}

	Describe("CreateProject", func() {
		It("should create a project with parsed costs", func() {
			p := createProject()
			Expect(p.ID).NotTo(BeZero())
			Expect(p.AmountCharged.StringFixed(2)).To(Equal("2600.00"))
		})

		It("should default omitted costs to zero", func() {
			p, err := service.CreateProject(invoice.CreateProjectDTO{
				Name:          "Small Job",
				AmountCharged: "300.00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.MaterialsCost.IsZero()).To(BeTrue())
			Expect(p.LaborCost.IsZero()).To(BeTrue())
		})

		It("should reject a blank name", func() {
			_, err := service.CreateProject(invoice.CreateProjectDTO{Name: " "})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("CreateInvoice", func() {
		var project *invoice.Project

		BeforeEach(func() {
			project = createProject()
		})

		It("should create an invoice with the issue date set", func() {
			inv, err := service.CreateInvoice(invoice.CreateInvoiceDTO{
				ProjectID:     project.ID,
				InvoiceNumber: "INV-001",
				TotalAmount:   "2600.00",
			})
			Expect(err).NotTo(HaveOccurred())
			Expect(inv.ID).NotTo(BeZero())
			Expect(inv.IssueDate.IsZero()).To(BeFalse())
		})

		It("should refuse a duplicate invoice number", func() {
			_, err := service.CreateInvoice(invoice.CreateInvoiceDTO{
				ProjectID:     project.ID,
				InvoiceNumber: "INV-001",
				TotalAmount:   "2600.00",
			})
			Expect(err).NotTo(HaveOccurred())

			_, err = service.CreateInvoice(invoice.CreateInvoiceDTO{
				ProjectID:     project.ID,
				InvoiceNumber: "INV-001",
				TotalAmount:   "100.00",
			})
			Expect(err).To(Equal(internal.ErrDuplicateInvoice))
		})

		It("should reject an unknown project", func() {
			_, err := service.CreateInvoice(invoice.CreateInvoiceDTO{
				ProjectID:     999,
				InvoiceNumber: "INV-002",
				TotalAmount:   "100.00",
			})
			Expect(err).To(Equal(internal.ErrProjectNotFound))
		})
	})

	Describe("RenderInvoicePDF", func() {
		It("should render the document with the invoice figures", func() {
			project := createProject()
			inv, err := service.CreateInvoice(invoice.CreateInvoiceDTO{
				ProjectID:     project.ID,
				InvoiceNumber: "INV-001",
				TotalAmount:   "2600.00",
			})
			Expect(err).NotTo(HaveOccurred())

			doc, filename, err := service.RenderInvoicePDF(inv.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(filename).To(Equal("invoice_INV-001.pdf"))
			Expect(string(doc)).To(ContainSubstring("INV-001"))
			Expect(string(doc)).To(ContainSubstring("Lakeside Drive Repaint"))
			Expect(string(doc)).To(ContainSubstring("2600.00"))
		})

		It("should return not found for an unknown invoice", func() {
			_, _, err := service.RenderInvoicePDF(999)
			Expect(err).To(Equal(internal.ErrInvoiceNotFound))
		})
	})
})
