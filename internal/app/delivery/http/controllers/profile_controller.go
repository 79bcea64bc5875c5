package controllers

import (
	"clinic-dashboard/internal/app/config"
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/delivery/http/views"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const profilesPath = "/profiles"

// ProfileController serves the profiles list and the single profile page.
// Both pages are shared by every request, like one open browser tab.
type ProfileController struct {
	Log                *zap.Logger
	ProfileListUsecase contracts.ProfileListUsecase
	Profile            contracts.ProfileController
	ListPage           *views.Page
	ProfilePage        *views.Page
	Renderer           *views.Renderer
	InternalConfig     *config.InternalConfig
}

func NewProfileController(
	logger *zap.Logger,
	profileListUsecase contracts.ProfileListUsecase,
	profile contracts.ProfileController,
	listPage *views.Page,
	profilePage *views.Page,
	renderer *views.Renderer,
	internalConfig *config.InternalConfig,
) *ProfileController {
	return &ProfileController{
		Log:                logger,
		ProfileListUsecase: profileListUsecase,
		Profile:            profile,
		ListPage:           listPage,
		ProfilePage:        profilePage,
		Renderer:           renderer,
		InternalConfig:     internalConfig,
	}
}

func (ctrl *ProfileController) Index(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProfileController.Index called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	rows, err := ctrl.ProfileListUsecase.Load(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	views.RenderTable(ctrl.ListPage, constvars.RegionProfilesBody, rows, views.ProfileListRow, constvars.RegionNoProfiles)

	ctrl.renderList(ctx, w, r)
}

// Delete removes the row from the list already on screen and renders it
// again without refetching.
func (ctrl *ProfileController) Delete(w http.ResponseWriter, r *http.Request) {
	patientID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, profilesPath)
		return
	}

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	if _, err := ctrl.ProfileListUsecase.Delete(ctx, patientID); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	ctrl.renderList(ctx, w, r)
}

func (ctrl *ProfileController) renderList(ctx context.Context, w http.ResponseWriter, r *http.Request) {
	flash, err := ctrl.ProfileListUsecase.TakeFlash(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	renderScreen(ctrl.Log, ctrl.Renderer, w, r, views.ScreenData{
		Title:  "Profiles",
		Screen: constvars.ScreenProfiles,
		Flash:  flash,
		Page:   ctrl.ListPage.Snapshot(),
	})
}

// Show points the profile page at {id} and renders it once loaded. A
// non-numeric id goes back to the list.
func (ctrl *ProfileController) Show(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := idParam(r)
	if !ok {
		redirectTo(w, r, profilesPath)
		return
	}
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProfileController.Show called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	ctrl.Profile.Activate(ctx, subjectID)

	data := views.ScreenData{
		Title:     "Profile",
		Screen:    constvars.ScreenProfile,
		SubjectID: subjectID,
	}
	err := ctrl.Profile.WithSubject(subjectID, func(profile *responses.Profile) {
		data.Page = ctrl.ProfilePage.Snapshot()
		data.Profile = profile
	})
	if err != nil {
		// The shared page holds a failed load or someone else's subject.
		ctrl.Log.Warn("ProfileController.Show subject not on screen",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
		data.Page = errorProfilePage()
		if exceptions.StatusCodeOf(err) == constvars.StatusConflict {
			data.Flash = &contracts.Flash{Level: constvars.AlertLevelError, Message: constvars.ErrClientProfileSwitched}
		}
	}

	renderScreen(ctrl.Log, ctrl.Renderer, w, r, data)
}

func errorProfilePage() views.Snapshot {
	page := views.NewPage()
	views.NewProfileView(page).RenderError()
	return page.Snapshot()
}

// Export downloads the bills (or enrollments) currently shown for {id}.
func (ctrl *ProfileController) Export(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := idParam(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	format := chi.URLParam(r, constvars.URLParamFormat)

	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("ProfileController.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingFormatKey, format),
	)

	ctx, cancel := requestContext(r, ctrl.InternalConfig)
	defer cancel()

	ensureActive(ctx, ctrl.Profile, subjectID)

	document, err := ctrl.Profile.Export(ctx, subjectID, format)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.WriteFile(w, document.FileName, document.ContentType, document.Body, document.Inline)
}

// Version lets the open profile page poll for re-renders.
func (ctrl *ProfileController) Version(w http.ResponseWriter, r *http.Request) {
	subjectID, ok := idParam(r)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(nil, constvars.URLParamID))
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, "", responses.PageVersion{
		SubjectID: subjectID,
		Version:   ctrl.ProfilePage.Version(),
	})
}

// ensureActive loads subjectID unless it is already the subject on screen.
func ensureActive(ctx context.Context, profile contracts.ProfileController, subjectID int64) {
	if current := profile.Current(); current != nil && current.SubjectID == subjectID {
		return
	}
	profile.Activate(ctx, subjectID)
}
