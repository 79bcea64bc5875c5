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

const doctorsPath = "/doctors"

type DoctorController struct {
	Log            *zap.Logger
	DoctorUsecase  contracts.DoctorUsecase
	Renderer       *views.Renderer
	InternalConfig *config.InternalConfig
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase, renderer *views.Renderer, internalConfig *config.InternalConfig) *DoctorController {
	return &DoctorController{
		Log:            logger,
		DoctorUsecase:  doctorUsecase,
		Renderer:       renderer,
		InternalConfig: internalConfig,
	}
}

func (ctrl *DoctorController) Index(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.Index called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.Load(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	page := views.NewPage()
	views.RenderTable(page, constvars.RegionDoctorsBody, doctors, views.DoctorRow, constvars.RegionNoDoctors)

	data := views.ScreenData{
		Title:  "Doctors",
		Screen: constvars.ScreenDoctors,
	}

	editingID, err := ctrl.DoctorUsecase.EditingID(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if editingID != nil {
		form, err := ctrl.DoctorUsecase.Edit(ctx, *editingID)
		if err != nil {
			ctrl.Log.Warn("DoctorController.Index editing record unavailable, leaving edit mode",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Int64(constvars.LoggingResourceIDKey, *editingID),
				zap.Error(err),
			)
			if err := ctrl.DoctorUsecase.Cancel(ctx); err != nil {
				utils.BuildErrorResponse(ctrl.Log, w, err)
				return
			}
		} else {
			data.EditingID = editingID
			data.Form = form
		}
	}

	data.Flash, err = ctrl.DoctorUsecase.TakeFlash(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	data.Page = page.Snapshot()

	renderScreen(ctrl.Log, ctrl.Renderer, w, r, data)
}

func (ctrl *DoctorController) Submit(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("DoctorController.Submit called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := r.ParseForm(); err != nil {
		ctrl.Log.Warn("DoctorController.Submit error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		redirectTo(w, r, doctorsPath)
		return
	}

	form := &requests.DoctorForm{
		Name:      strings.TrimSpace(r.PostFormValue("name")),
		Specialty: utils.OptionalString(r.PostFormValue("specialty")),
		Schedule:  utils.OptionalString(r.PostFormValue("schedule")),
		Phone:     strings.TrimSpace(r.PostFormValue("phone")),
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.DoctorUsecase.Submit(ctx, form); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, doctorsPath)
}

func (ctrl *DoctorController) Cancel(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if err := ctrl.DoctorUsecase.Cancel(ctx); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, doctorsPath)
}

func (ctrl *DoctorController) Edit(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, doctorsPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	_, _ = ctrl.DoctorUsecase.Edit(ctx, doctorID)
	redirectTo(w, r, doctorsPath)
}

func (ctrl *DoctorController) Delete(w http.ResponseWriter, r *http.Request) {
	doctorID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, doctorsPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.DoctorUsecase.Delete(ctx, doctorID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	redirectTo(w, r, doctorsPath)
}
