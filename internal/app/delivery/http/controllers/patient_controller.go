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

const patientsPath = "/patients"

type PatientController struct {
	Log            *zap.Logger
	PatientUsecase contracts.PatientUsecase
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewPatientController(logger *zap.Logger, patientUsecase contracts.PatientUsecase, renderer *views.Renderer, internalConfig *config.InternalConfig) *PatientController {
	return &PatientController{
		Log:            logger,
		PatientUsecase: patientUsecase,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}

func (ctrl *PatientController) Index(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.Index called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	patients, err := ctrl.PatientUsecase.Load(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page := views.NewPage()
	views.RenderTable(page, constvars.RegionPatientsBody, patients, views.PatientRow, constvars.RegionNoPatients)

	data := views.ScreenData{
		Title:  "Patients",
		Screen: constvars.ScreenPatients,
	}

	editingID, err := ctrl.PatientUsecase.EditingID(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if editingID != nil {
		form, err := ctrl.PatientUsecase.Edit(ctx, *editingID)
		if err != nil {
			ctrl.Log.Warn("PatientController.Index editing record unavailable, leaving edit mode",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingPatientIDKey, *editingID),
				zap.Error(err),
			)
			if err := ctrl.PatientUsecase.Cancel(ctx); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, err)
				return
			}
		} else {
			data.EditingID = editingID
			data.Form = form
		}
	}

	data.Flash, err = ctrl.PatientUsecase.TakeFlash(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	data.Page = page.Snapshot()

	renderScreen(ctrl.Log, ctrl.Renderer, w, r, data)
}

func (ctrl *PatientController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("PatientController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Warn("PatientController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		redirectTo(w, r, patientsPath)
		return
	}

	age, err := utils.ParseOptionalInt(r.PostFormValue("age"))
	if err != nil {
		ctrl.Log.Info("PatientController.Submit ignoring malformed age",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		age = nil
	}
	form := &requests.PatientForm{
		FirstName: strings.TrimSpace(r.PostFormValue("first_name")),
		LastName:  strings.TrimSpace(r.PostFormValue("last_name")),
		Age:       age,
		Gender:    utils.OptionalString(r.PostFormValue("gender")),
		Phone:     strings.TrimSpace(r.PostFormValue("phone")),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.PatientUsecase.Submit(ctx, form); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, patientsPath)
}

func (ctrl *PatientController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.PatientUsecase.Cancel(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, patientsPath)
}

func (ctrl *PatientController) Edit(w http.ResponseWriter, r *http.Request) {
	patientID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, patientsPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	// a failed lookup already left an alert for the next render
	_, _ = ctrl.PatientUsecase.Edit(ctx, patientID)
	redirectTo(w, r, patientsPath)
}

func (ctrl *PatientController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, patientsPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.PatientUsecase.Delete(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, patientsPath)
}
