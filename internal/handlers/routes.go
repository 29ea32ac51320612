package handlers

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

type Handlers struct {
	Auth        *AuthHandler
	Upload      *UploadHandler
	Interview   *InterviewHandler
	Suitability *SuitabilityHandler
}

type AppOptions struct {
	BodyLimit     int
	AccessLog     bool
	Authenticator fiber.Handler
}

// NewApp builds the Fiber app with middleware and every route mounted.
func NewApp(h Handlers, opts AppOptions) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "AI Powered Interview Simulator",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 2 * time.Minute,
		BodyLimit:    opts.BodyLimit,
		ErrorHandler: customErrorHandler,
	})

	app.Use(recover.New())
	if opts.AccessLog {
		app.Use(logger.New(logger.Config{
			Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
			TimeFormat: "2006-01-02 15:04:05",
		}))
	}

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	if opts.Authenticator != nil {
		app.Use(opts.Authenticator)
	}

	SetupRoutes(app, h)

	return app
}

func SetupRoutes(app *fiber.App, h Handlers) {
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"ping": "pong"})
	})

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "AI Powered Interview Simulator",
			"version": "1.0.0",
			"endpoints": []string{
				"GET|POST /auth/register",
				"GET|POST /auth/login",
				"GET /auth/logout",
				"GET /files/upload_form",
				"POST /files/upload",
				"GET /interview/start/:upload_id",
				"POST /interview/submit",
				"POST /interview/upload_pdfs",
				"GET /suitability/view/:upload_id",
			},
		})
	})

	auth := app.Group("/auth")
	auth.Get("/register", h.Auth.HandleRegisterForm)
	auth.Post("/register", h.Auth.HandleRegister)
	auth.Get("/login", h.Auth.HandleLoginForm)
	auth.Post("/login", h.Auth.HandleLogin)
	auth.Get("/logout", h.Auth.HandleLogout)

	files := app.Group("/files")
	files.Get("/upload_form", h.Upload.HandleUploadForm)
	files.Post("/upload", h.Upload.HandleUpload)

	interview := app.Group("/interview")
	interview.Get("/start/:upload_id", h.Interview.HandleStart)
	interview.Post("/submit", h.Interview.HandleSubmit)
	interview.Post("/upload_pdfs", h.Interview.HandleUploadPDFs)

	suitability := app.Group("/suitability")
	suitability.Get("/view/:upload_id", h.Suitability.HandleView)
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
