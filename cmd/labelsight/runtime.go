package main

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/labelsight/labelsight/app/services"
	"github.com/labelsight/labelsight/config"
	"github.com/labelsight/labelsight/pkg/credentials"
	"github.com/labelsight/labelsight/pkg/event"
	"github.com/labelsight/labelsight/pkg/rest"
	"github.com/labelsight/labelsight/pkg/validate"
)

// app wires the credential store, the rest client and the services for one
// command invocation.
type app struct {
	store       *credentials.Store
	products    *services.ProductService
	users       *services.UserService
	inspections *services.InspectionService
	uploads     *services.UploadService
	dashboards  *services.DashboardService

	offSession func()
}

func newApp() (*app, error) {
	if err := config.Load(); err != nil {
		return nil, err
	}

	store, err := credentials.Open(config.CredentialsFile())
	if err != nil {
		return nil, err
	}

	client := rest.New(config.APIBaseURL(),
		rest.WithTokenSource(store.Token),
		rest.WithTimeout(config.HTTPTimeout()),
	)

	// One listener per process: on 401 the session is gone, so drop the
	// stored credentials and tell the operator.
	off := event.Listen(event.SessionExpired, func(interface{}) {
		fmt.Fprintln(os.Stderr, "Session expired — run `labelsight auth login` to sign in again.")
		_ = store.Clear()
	})

	return &app{
		store:       store,
		products:    services.NewProductService(client),
		users:       services.NewUserService(client),
		inspections: services.NewInspectionService(client),
		uploads:     services.NewUploadService(client),
		dashboards:  services.NewDashboardService(client),
		offSession:  off,
	}, nil
}

func (a *app) close() {
	if a.offSession != nil {
		a.offSession()
	}
}

// formatErr turns validation failures into per-field lines, in field order;
// everything else passes through as-is.
func formatErr(err error) error {
	var verr *validate.Error
	if errors.As(err, &verr) {
		fields := make([]string, 0, len(verr.Fields))
		for field := range verr.Fields {
			fields = append(fields, field)
		}
		sort.Strings(fields)

		msg := "invalid input:"
		for _, field := range fields {
			msg += fmt.Sprintf("\n  %s: %s", field, verr.Fields[field])
		}
		return errors.New(msg)
	}
	return err
}
