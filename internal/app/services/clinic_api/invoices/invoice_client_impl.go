package invoices

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/clinic_api/resource"
	"clinic-dashboard/internal/pkg/clinic_dto"
	"clinic-dashboard/internal/pkg/constvars"
	"context"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

type invoiceClient struct {
	resource *resource.Client[clinic_dto.Invoice]
}

func NewInvoiceClient(http *resty.Client, logger *zap.Logger) contracts.InvoiceClient {
	return &invoiceClient{
		resource: resource.NewClient[clinic_dto.Invoice](http, constvars.ResourceInvoices, logger),
	}
}

func (c *invoiceClient) ListInvoices(ctx context.Context) ([]clinic_dto.Invoice, error) {
	return c.resource.ListAll(ctx)
}

func (c *invoiceClient) FindInvoiceByID(ctx context.Context, invoiceID int64) (*clinic_dto.Invoice, error) {
	return c.resource.GetOne(ctx, invoiceID)
}

func (c *invoiceClient) CreateInvoice(ctx context.Context, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	return c.resource.Create(ctx, request)
}

func (c *invoiceClient) UpdateInvoice(ctx context.Context, invoiceID int64, request *clinic_dto.InvoiceRequest) (*clinic_dto.Invoice, error) {
	return c.resource.Update(ctx, invoiceID, request)
}

func (c *invoiceClient) DeleteInvoice(ctx context.Context, invoiceID int64) error {
	return c.resource.Delete(ctx, invoiceID)
}
