package router

import (
	"context"
	"net/http"

	mem "pet-hub/internal/adapters/storage/memory"
	"pet-hub/internal/domain/admins"
	"pet-hub/internal/domain/appointments"
	"pet-hub/internal/domain/medical"
	"pet-hub/internal/domain/owners"
	"pet-hub/internal/domain/pets"
	"pet-hub/internal/domain/reminders"
	"pet-hub/internal/middleware"
	"pet-hub/internal/platform/logger"
	"pet-hub/internal/platform/metrics"
	"pet-hub/internal/store"

	_ "pet-hub/docs"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

type Options struct {
	// Opcional: si no viene, se usa un Store in-memory ya inicializado.
	Store *store.Store

	Logger  logger.Logger     // puede ser nil
	Metrics *metrics.Registry // puede ser nil (sin /metrics)
}

func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.Nop()
	}

	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.AccessLog(log))
	r.Use(chimw.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	if opts.Metrics != nil {
		r.Method(http.MethodGet, "/metrics", opts.Metrics.Handler())
	}
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	st := opts.Store
	if st == nil {
		// Modo dev: sustrato en memoria. Init no falla sobre memory.
		st = store.New(mem.NewKVStore(), store.WithLogger(log))
		_ = st.Init(context.Background())
	}

	// Services por módulo; el Store implementa todos los repositorios.
	petsSvc := pets.NewService(st)
	ownersSvc := owners.NewService(st)
	medicalSvc := medical.NewService(st)
	appointmentsSvc := appointments.NewService(st)
	remindersSvc := reminders.NewService(st)
	adminsSvc := admins.NewService(st)

	// Rutas por módulo
	pets.RegisterRoutes(r, petsSvc)
	owners.RegisterRoutes(r, ownersSvc, petsSvc)
	medical.RegisterRoutes(r, medicalSvc)
	appointments.RegisterRoutes(r, appointmentsSvc)
	reminders.RegisterRoutes(r, remindersSvc)
	admins.RegisterRoutes(r, adminsSvc)

	return r
}
