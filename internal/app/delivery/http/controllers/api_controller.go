package controllers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type APIController struct {
	Log            *zap.Logger
	Profile        contracts.ProfileController
	InternalConfig *config.InternalConfig
}

func NewAPIController(logger *zap.Logger, profile contracts.ProfileController, internalConfig *config.InternalConfig) *APIController {
	return &APIController{
		Log:            logger,
		Profile:        profile,
		InternalConfig: internalConfig,
	}
}

// GetProfile reloads {id} and returns the resulting view model.
func (ctrl *APIController) GetProfile(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := idParam(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("APIController.GetProfile called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	ctrl.Profile.Activate(ctx, subjectID)

	var profile *responses.Profile
	err := ctrl.Profile.WithSubject(subjectID, func(current *responses.Profile) {
		profile = current
	})
	if err != nil {
		if exceptions.StatusCodeOf(err) != constvars.StatusConflict {
			err = exceptions.ErrProfileMissing()
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("APIController.GetProfile succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, profile)
}

func (ctrl *APIController) ArchiveExport(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := idParam(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	format := chi.URLParam(r, constvars.URLParamFormat)

	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("APIController.ArchiveExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingFormatKey, format),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	ensureActive(ctx, ctrl.Profile, subjectID)

	archived, err := ctrl.Profile.ArchiveExport(ctx, subjectID, format)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ArchiveExportSuccessMessage, archived)
}

func (ctrl *APIController) Health(w http.ResponseWriter, r *http.Request) {
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HealthSuccessMessage, map[string]string{
		"version": ctrl.InternalConfig.App.Version,
	})
}
