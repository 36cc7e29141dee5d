package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/ignite/campaign-dashboard/internal/datanorm"
	"github.com/ignite/campaign-dashboard/internal/export"
	"github.com/ignite/campaign-dashboard/internal/pkg/httputil"
	"github.com/ignite/campaign-dashboard/internal/pkg/logger"
	"github.com/ignite/campaign-dashboard/internal/source"
	"github.com/ignite/campaign-dashboard/internal/view"
)

// Loader fetches a raw dashboard document by gist id
type Loader interface {
	Load(ctx context.Context, id string) (datanorm.RawDocument, error)
}

// Handlers contains the dashboard HTTP handlers
type Handlers struct {
	loader      Loader
	holder      *datanorm.Holder
	defaultGist string
}

// NewHandlers creates a new Handlers instance. defaultGist is used when a
// request carries no gist parameter; it may be empty.
func NewHandlers(loader Loader, holder *datanorm.Holder, defaultGist string) *Handlers {
	return &Handlers{
		loader:      loader,
		holder:      holder,
		defaultGist: defaultGist,
	}
}

// DashboardResponse is the body of a successful load
type DashboardResponse struct {
	Snapshot *datanorm.Snapshot `json:"snapshot"`
	View     view.Dashboard     `json:"view"`
}

// HandleLoad fetches the gist, commits the new snapshot and returns it.
//
//	GET /api/dashboard?gist=ID
func (h *Handlers) HandleLoad(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("gist")
	if id == "" {
		id = h.defaultGist
	}

	doc, err := h.loader.Load(r.Context(), id)
	if err != nil {
		respondLoadError(w, id, err)
		return
	}

	snap := datanorm.Build(doc)
	h.holder.Commit(snap)
	logger.Info("dashboard loaded", "gist_id", id, "snapshot_id", snap.ID.String(), "campaigns", len(snap.Campaigns))

	httputil.OK(w, DashboardResponse{Snapshot: snap, View: view.Build(snap)})
}

// HandleCurrent returns the committed snapshot without fetching.
//
//	GET /api/dashboard/current
func (h *Handlers) HandleCurrent(w http.ResponseWriter, r *http.Request) {
	snap := h.holder.Current()
	if snap == nil {
		httputil.Conflict(w, export.ErrNoSnapshot.Error())
		return
	}
	httputil.OK(w, DashboardResponse{Snapshot: snap, View: view.Build(snap)})
}

// HandleExport renders the committed snapshot as a download.
//
//	GET /api/dashboard/export.csv
//	GET /api/dashboard/export.xlsx
func (h *Handlers) HandleExport(format export.Format) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := export.Render(h.holder.Current(), format)
		if errors.Is(err, export.ErrNoSnapshot) {
			httputil.Conflict(w, err.Error())
			return
		}
		if err != nil {
			logger.Error("export failed", "format", string(format), "error", err.Error())
			httputil.InternalError(w, err)
			return
		}

		httputil.Attachment(w, report.Filename, report.ContentType, report.Data)
	}
}

func respondLoadError(w http.ResponseWriter, id string, err error) {
	logger.Warn("dashboard load failed", "gist_id", id, "kind", string(source.Kind(err)), "error", err.Error())

	switch source.Kind(err) {
	case source.KindInput:
		httputil.BadRequest(w, err.Error())
	case source.KindFetch:
		httputil.Error(w, http.StatusBadGateway, "fetch_failed", err.Error())
	case source.KindFormat:
		httputil.Error(w, http.StatusUnprocessableEntity, "invalid_document", err.Error())
	default:
		httputil.InternalError(w, err)
	}
}
