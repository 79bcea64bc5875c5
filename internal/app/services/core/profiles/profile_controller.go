package profiles

import (
	"clinic-dashboard/internal/app/contracts"
	"clinic-dashboard/internal/app/services/shared/storage"
	"clinic-dashboard/internal/pkg/constvars"
	"clinic-dashboard/internal/pkg/dto/responses"
	"clinic-dashboard/internal/pkg/exceptions"
	"clinic-dashboard/internal/pkg/exporter"
	"clinic-dashboard/internal/pkg/utils"
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Loader builds one profile snapshot.
type Loader interface {
	Load(ctx context.Context, subjectID int64) (*responses.Profile, error)
}

// ArchiveLimiter bounds how often one subject may be archived.
type ArchiveLimiter interface {
	Allow(ctx context.Context, resourceName string) (bool, int, error)
}

type profileController struct {
	Loader   Loader
	Renderer contracts.ProfileRenderer
	Bus      contracts.EventBus
	Archive  storage.ExportArchive
	Limiter  ArchiveLimiter
	Log      *zap.Logger

	mu            sync.Mutex
	subjectID     int64
	active        bool
	subscriptions []contracts.Subscription
	current       *responses.Profile

	// generation increases on every load; a load only renders while it is
	// still the latest one.
	generation atomic.Uint64
	renderMu   sync.Mutex
}

// NewProfileController wires the profile page. archive and limiter may be nil.
func NewProfileController(
	loader Loader,
	renderer contracts.ProfileRenderer,
	bus contracts.EventBus,
	archive storage.ExportArchive,
	limiter ArchiveLimiter,
	logger *zap.Logger,
) contracts.ProfileController {
	return &profileController{
		Loader:   loader,
		Renderer: renderer,
		Bus:      bus,
		Archive:  archive,
		Limiter:  limiter,
		Log:      logger,
	}
}

// Activate points the page at subjectID. Earlier subscriptions are dropped
// before the new pair is registered.
func (c *profileController) Activate(ctx context.Context, subjectID int64) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileController.Activate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
	)

	c.mu.Lock()
	c.dropSubscriptionsLocked()
	c.subjectID = subjectID
	c.active = true
	c.current = nil
	c.subscriptions = []contracts.Subscription{
		c.Bus.Subscribe(constvars.EventInvoicesChanged, c.onInvoicesChanged(subjectID)),
		c.Bus.Subscribe(constvars.EventPatientsChanged, c.onPatientsChanged(subjectID)),
	}
	c.mu.Unlock()

	c.load(ctx, subjectID)
}

func (c *profileController) Reload(ctx context.Context) {
	c.mu.Lock()
	subjectID, active := c.subjectID, c.active
	c.mu.Unlock()
	if !active {
		return
	}
	c.load(ctx, subjectID)
}

func (c *profileController) Deactivate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dropSubscriptionsLocked()
	c.active = false
	c.current = nil
	c.generation.Add(1)
}

func (c *profileController) Current() *responses.Profile {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

func (c *profileController) dropSubscriptionsLocked() {
	for _, sub := range c.subscriptions {
		sub.Unsubscribe()
	}
	c.subscriptions = nil
}

func (c *profileController) onInvoicesChanged(subjectID int64) contracts.EventHandler {
	return func(ctx context.Context, event contracts.Event) {
		if event.PatientID != nil && *event.PatientID != subjectID {
			return
		}
		c.load(ctx, subjectID)
	}
}

func (c *profileController) onPatientsChanged(subjectID int64) contracts.EventHandler {
	return func(ctx context.Context, event contracts.Event) {
		c.load(ctx, subjectID)
	}
}

// load never returns an error: failures end in the page's error state.
func (c *profileController) load(ctx context.Context, subjectID int64) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	generation := c.generation.Add(1)

	c.renderMu.Lock()
	c.Renderer.SetLoading(true)
	c.renderMu.Unlock()

	defer func() {
		c.renderMu.Lock()
		defer c.renderMu.Unlock()
		if c.generation.Load() == generation {
			c.Renderer.SetLoading(false)
		}
	}()

	profile, err := c.Loader.Load(ctx, subjectID)

	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	if c.generation.Load() != generation {
		c.Log.Info("profileController.load discarding superseded result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Uint64(constvars.LoggingGenerationKey, generation),
		)
		return
	}

	if err != nil {
		c.Log.Error("profileController.load error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
		c.Renderer.RenderError()
		c.setCurrent(nil)
		return
	}

	profile.Generation = generation
	switch profile.Kind {
	case responses.ProfileKindStudent:
		c.Renderer.RenderStudentBasic(profile.Student)
		c.Renderer.RenderEnrollmentCount(len(profile.Enrollments))
		c.Renderer.RenderEnrollmentsTable(profile.Enrollments)
	default:
		c.Renderer.RenderPatientBasic(profile.Patient, profile.Serial)
		c.Renderer.RenderBillCount(len(profile.Bills))
		c.Renderer.RenderBillsTable(profile.Bills, profile.Doctors)
	}
	c.setCurrent(profile)

	c.Log.Info("profileController.load succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.Uint64(constvars.LoggingGenerationKey, generation),
	)
}

func (c *profileController) setCurrent(profile *responses.Profile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.current = profile
}

// WithSubject runs view while no load can render, and only when the
// snapshot on screen belongs to subjectID.
func (c *profileController) WithSubject(subjectID int64, view func(profile *responses.Profile)) error {
	c.renderMu.Lock()
	defer c.renderMu.Unlock()

	profile, err := c.currentFor(subjectID)
	if err != nil {
		return err
	}
	view(profile)
	return nil
}

// currentFor refuses a snapshot that another activation has replaced.
func (c *profileController) currentFor(subjectID int64) (*responses.Profile, error) {
	profile := c.Current()
	if profile == nil {
		return nil, exceptions.ErrNoActiveProfile()
	}
	if profile.SubjectID != subjectID {
		return nil, exceptions.ErrProfileSwitched(subjectID, profile.SubjectID)
	}
	return profile, nil
}

// Export renders the snapshot on screen, so the file always matches the
// rows the user sees.
func (c *profileController) Export(ctx context.Context, subjectID int64, format string) (*exporter.Document, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileController.Export called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingFormatKey, format),
	)

	profile, err := c.currentFor(subjectID)
	if err != nil {
		c.Log.Warn("profileController.Export subject not on screen",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
			zap.Error(err),
		)
		return nil, err
	}
	return c.exportProfile(requestID, profile, format)
}

func (c *profileController) exportProfile(requestID string, profile *responses.Profile, format string) (*exporter.Document, error) {
	var (
		document *exporter.Document
		err      error
	)
	switch profile.Kind {
	case responses.ProfileKindStudent:
		document, err = exporter.Build(format, EnrollmentsExportSpec(profile.SubjectID), profile.Enrollments)
	default:
		document, err = exporter.Build(format, BillsExportSpec(profile.SubjectID, profile.Doctors), profile.Bills)
	}
	if err != nil {
		c.Log.Error("profileController.Export error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingFormatKey, format),
			zap.Error(err),
		)
		return nil, err
	}

	c.Log.Info("profileController.Export succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, profile.SubjectID),
		zap.String(constvars.LoggingFormatKey, format),
		zap.Int(constvars.LoggingResponseLenKey, len(document.Body)),
	)
	return document, nil
}

func (c *profileController) ArchiveExport(ctx context.Context, subjectID int64, format string) (*responses.ArchivedExport, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("profileController.ArchiveExport called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingSubjectIDKey, subjectID),
		zap.String(constvars.LoggingFormatKey, format),
	)

	if c.Archive == nil {
		return nil, exceptions.ErrExportArchiveDisabled()
	}

	profile, err := c.currentFor(subjectID)
	if err != nil {
		return nil, err
	}

	if c.Limiter != nil {
		subject := fmt.Sprintf("%s-%d", profile.Kind, profile.SubjectID)
		allowed, retryAfter, err := c.Limiter.Allow(ctx, subject)
		if err != nil {
			c.Log.Warn("profileController.ArchiveExport limiter unavailable, allowing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		} else if !allowed {
			return nil, exceptions.ErrArchiveRateLimited(subject, retryAfter)
		}
	}

	document, err := c.exportProfile(requestID, profile, format)
	if err != nil {
		return nil, err
	}

	objectName := time.Now().UTC().Format("20060102T150405Z") + "/" + document.FileName
	archived, err := c.Archive.Archive(ctx, objectName, document.ContentType, document.Body)
	if err != nil {
		c.Log.Error("profileController.ArchiveExport error archiving",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingExportObjectKey, objectName),
			zap.Error(err),
		)
		return nil, err
	}

	utils.LogBusinessEvent(c.Log, constvars.BusinessEventExportArchived, requestID,
		zap.Int64(constvars.LoggingSubjectIDKey, profile.SubjectID),
		zap.String(constvars.LoggingExportObjectKey, archived.ObjectName),
	)
	return archived, nil
}
