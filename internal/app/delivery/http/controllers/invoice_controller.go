package controllers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/delivery/http/views"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/requests"
	"clinic-dashboard/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

const invoicesPath = "/invoices"

type InvoiceController struct {
	Log            *zap.Logger
	InvoiceUsecase contracts.InvoiceUsecase
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewInvoiceController(logger *zap.Logger, invoiceUsecase contracts.InvoiceUsecase, renderer *views.Renderer, internalConfig *config.InternalConfig) *InvoiceController {
	return &InvoiceController{
		Log:            logger,
		InvoiceUsecase: invoiceUsecase,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}

func (ctrl *InvoiceController) Index(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InvoiceController.Index called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	invoices, err := ctrl.InvoiceUsecase.Load(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	options, err := ctrl.InvoiceUsecase.Options(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page := views.NewPage()
	views.RenderTable(page, constvars.RegionBillingBody, invoices, views.InvoiceRow, constvars.RegionNoBilling)

	data := views.ScreenData{
		Title:   "Billing",
		Screen:  constvars.ScreenInvoices,
		Options: options,
	}

	editingID, err := ctrl.InvoiceUsecase.EditingID(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if editingID != nil {
		form, err := ctrl.InvoiceUsecase.Edit(ctx, *editingID)
		if err != nil {
			ctrl.Log.Warn("InvoiceController.Index editing record unavailable, leaving edit mode",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingResourceIDKey, *editingID),
				zap.Error(err),
			)
			if err := ctrl.InvoiceUsecase.Cancel(ctx); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, err)
				return
			}
		} else {
			data.EditingID = editingID
			data.Form = form
		}
	}

	data.Flash, err = ctrl.InvoiceUsecase.TakeFlash(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	data.Page = page.Snapshot()

	renderScreen(ctrl.Log, ctrl.Renderer, w, r, data)
}

func (ctrl *InvoiceController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("InvoiceController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Warn("InvoiceController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		redirectTo(w, r, invoicesPath)
		return
	}

	patientID, _ := utils.ParseID(r.PostFormValue("patient_id"))
	form := &requests.InvoiceForm{
		PatientID:   patientID,
		DoctorID:    optionalID(r.PostFormValue("doctor_id")),
		Amount:      parseAmount(r.PostFormValue("amount")),
		IssuedOn:    utils.OptionalString(r.PostFormValue("issued_on")),
		Description: strings.TrimSpace(r.PostFormValue("description")),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.InvoiceUsecase.Submit(ctx, form); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, invoicesPath)
}

func (ctrl *InvoiceController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.InvoiceUsecase.Cancel(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, invoicesPath)
}

func (ctrl *InvoiceController) Edit(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, invoicesPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	_, _ = ctrl.InvoiceUsecase.Edit(ctx, invoiceID)
	redirectTo(w, r, invoicesPath)
}

func (ctrl *InvoiceController) Delete(w http.ResponseWriter, r *http.Request) {
	invoiceID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, invoicesPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.InvoiceUsecase.Delete(ctx, invoiceID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, invoicesPath)
}
