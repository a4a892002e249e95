package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"techtalks/internal/delivery/http/controllers"
	"techtalks/internal/delivery/http/middleware"
	"techtalks/internal/domain"
)

// Controllers groups the handlers mounted by NewRouter.
type Controllers struct {
	Home         *controllers.HomeController
	Registration *controllers.RegistrationController
	AdminAuth    *controllers.AdminAuthController
	Event        *controllers.EventController
	Company      *controllers.CompanyController
	Room         *controllers.RoomController
	Program      *controllers.ProgramController
}

// RouterConfig holds the cross-cutting settings of the router.
type RouterConfig struct {
	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter initializes the HTTP router with all application routes
func NewRouter(c Controllers, guard domain.Guard, cfg RouterConfig, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logging(logger))
	r.Use(chimw.Recoverer)
	r.Use(middleware.CORS(cfg.AllowedOrigins))
	if cfg.RequestTimeout > 0 {
		r.Use(chimw.Timeout(cfg.RequestTimeout))
	}

	// Public
	r.Get("/home", c.Home.GetHome)
	r.Post("/registration", c.Registration.Submit)
	r.Post("/verify", c.Registration.Verify)

	r.Route("/admin", func(r chi.Router) {
		r.Post("/login", c.AdminAuth.Login)
		r.Get("/session", c.AdminAuth.Session)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAdmin(guard, logger))
			adminRoutes(r, c)
		})
	})

	// Swagger
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return r
}

func adminRoutes(r chi.Router, c Controllers) {
	r.Route("/events", func(r chi.Router) {
		r.Get("/", c.Event.ListEvents)
		r.Post("/", c.Event.CreateEvent)
		r.Get("/latest", c.Event.GetLatestEvent)
		r.Route("/{eventID}", func(r chi.Router) {
			r.Get("/", c.Event.GetEvent)
			r.Put("/", c.Event.UpdateEvent)
			r.Delete("/", c.Event.DeleteEvent)
			r.Get("/registrations", c.Event.ListRegistrations)

			r.Get("/sponsors", c.Company.ListSponsors)
			r.Post("/sponsors", c.Company.AddSponsor)
			r.Delete("/sponsors/{companyID}", c.Company.RemoveSponsor)

			r.Get("/program", c.Program.ListProgram)
			r.Post("/program", c.Program.CreateEntry)
			r.Get("/program/options", c.Program.GetProgramOptions)
		})
	})

	r.Delete("/registrations/{token}", c.Event.DeleteRegistration)

	r.Route("/companies", func(r chi.Router) {
		r.Get("/", c.Company.ListCompanies)
		r.Post("/", c.Company.CreateCompany)
		r.Get("/directory", c.Company.SearchDirectory)
		r.Put("/{companyID}", c.Company.UpdateCompany)
		r.Delete("/{companyID}", c.Company.DeleteCompany)
	})

	r.Route("/rooms", func(r chi.Router) {
		r.Get("/", c.Room.ListRooms)
		r.Post("/", c.Room.CreateRoom)
		r.Put("/{roomID}", c.Room.UpdateRoom)
		r.Delete("/{roomID}", c.Room.DeleteRoom)
	})

	r.Put("/program/{entryID}", c.Program.UpdateEntry)
	r.Delete("/program/{entryID}", c.Program.DeleteEntry)
}
