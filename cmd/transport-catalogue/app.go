package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/theoremus-urban-solutions/transport-catalogue/catalogue"
	"github.com/theoremus-urban-solutions/transport-catalogue/config"
	"github.com/theoremus-urban-solutions/transport-catalogue/formatter"
	"github.com/theoremus-urban-solutions/transport-catalogue/gtfs"
	"github.com/theoremus-urban-solutions/transport-catalogue/internal/logging"
	"github.com/theoremus-urban-solutions/transport-catalogue/renderer"
	"github.com/theoremus-urban-solutions/transport-catalogue/requests"
	"github.com/theoremus-urban-solutions/transport-catalogue/routing"
	"github.com/theoremus-urban-solutions/transport-catalogue/snapshot"
)

type app struct {
	cfg    config.AppConfig
	logger *slog.Logger
}

func newApp(configPath string, logOut io.Writer) (*app, error) {
	if err := config.LoadDotEnv(".env"); err != nil {
		return nil, err
	}
	cfg, err := config.LoadAppConfig(configPath)
	if err != nil {
		return nil, err
	}
	return &app{cfg: cfg, logger: logging.New(logOut, cfg.Logging.Level, cfg.Logging.Format)}, nil
}

func (a *app) fail(mode string, err error) {
	logging.LogError(a.logger, "failed", err, slog.String("mode", mode))
}

// snapshotPath prefers the document's serialization settings over config
func (a *app) snapshotPath(s *requests.SerializationSettings) string {
	if s != nil && s.File != "" {
		return s.File
	}
	return a.cfg.Snapshot.File
}

func (a *app) makeBase(ctx context.Context, in io.Reader) error {
	start := time.Now()
	doc, err := requests.ReadBaseDocument(in)
	if err != nil {
		return err
	}

	reqs := doc.BaseRequests
	if a.cfg.GTFS.Path != "" {
		imported, err := a.importGTFS()
		if err != nil {
			return err
		}
		reqs = append(reqs, imported...)
	}

	cat := catalogue.New()
	if err := requests.Apply(cat, reqs); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	indexStart := time.Now()
	router, err := routing.Build(cat, doc.RoutingSettings.Settings())
	if err != nil {
		return err
	}
	logging.LogOperation(a.logger, "routing index built",
		slog.Int("stops", cat.StopCount()),
		slog.Int("buses", cat.BusCount()),
		slog.Int("edges", router.Graph().EdgeCount()),
		slog.Duration("duration", time.Since(indexStart)))
	if err := ctx.Err(); err != nil {
		return err
	}

	snap := snapshot.New(cat, doc.Render(), router)
	path := a.snapshotPath(doc.SerializationSettings)
	if err := snapshot.WriteFile(path, snap); err != nil {
		return err
	}
	logging.LogOperation(a.logger, "snapshot written",
		slog.String("file", path),
		slog.String("build_id", snap.Header.BuildID.String()),
		slog.Duration("duration", time.Since(start)))
	return nil
}

func (a *app) importGTFS() ([]requests.BaseRequest, error) {
	reqs, cached, err := gtfs.ImportFile(a.cfg.GTFS.Path, a.cfg.GTFS.CachePath, gtfs.Options{MaxRoutes: a.cfg.GTFS.MaxRoutes})
	if err != nil {
		return nil, err
	}
	if err := requests.ValidateBaseRequests(reqs); err != nil {
		return nil, fmt.Errorf("invalid GTFS import: %w", err)
	}
	logging.LogOperation(a.logger, "GTFS feed imported",
		slog.String("file", a.cfg.GTFS.Path),
		slog.Bool("cached", cached),
		slog.Int("records", len(reqs)))
	return reqs, nil
}

func (a *app) processRequests(ctx context.Context, in io.Reader, out io.Writer) error {
	doc, err := requests.ReadStatDocument(in)
	if err != nil {
		return err
	}

	path := a.snapshotPath(doc.SerializationSettings)
	snap, err := snapshot.ReadFile(path)
	if err != nil {
		return err
	}
	logging.LogOperation(a.logger, "snapshot loaded",
		slog.String("file", path),
		slog.String("build_id", snap.Header.BuildID.String()),
		slog.Time("created_at", snap.Header.CreatedAt),
		slog.Int("stops", snap.Catalogue.StopCount()),
		slog.Int("buses", snap.Catalogue.BusCount()))

	router, err := routing.Restore(snap.Catalogue, snap.RoutingSettings, snap.Graph, snap.RouteData)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	h := requests.NewHandler(snap.Catalogue, router, renderer.NewMapRenderer(snap.RenderSettings),
		requests.HandlerOptions{RouteCacheSize: a.cfg.Routing.RouteCacheSize, Logger: a.logger})
	result, err := h.Handle(doc.StatRequests)
	if err != nil {
		return err
	}
	if err := formatter.WriteJSON(out, result); err != nil {
		return err
	}
	a.logger.Debug("requests answered", "count", len(doc.StatRequests))
	return nil
}
