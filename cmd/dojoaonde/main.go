package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/csrf"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/terraincognita07/dojoaonde/internal/api"
	"github.com/terraincognita07/dojoaonde/internal/cli"
	"github.com/terraincognita07/dojoaonde/internal/db"
	"github.com/terraincognita07/dojoaonde/internal/i18n"
)

func main() {
	// A missing .env is fine; the environment may already be populated.
	_ = godotenv.Load()

	if len(os.Args) > 1 {
		os.Exit(runCommand(os.Args[1:]))
	}

	if err := runServer(); err != nil {
		fmt.Fprintf(os.Stderr, "dojoaonde: %v\n", err)
		os.Exit(1)
	}
}

func runCommand(args []string) int {
	switch args[0] {
	case "reset-password":
		if len(args) != 2 {
			fmt.Fprintln(os.Stderr, "usage: dojoaonde reset-password <email>")
			return 2
		}
		prompt := cli.TerminalPrompt(os.Stdin, os.Stdout)
		if err := cli.RunResetPasswordCommand(resolveDBPath(), args[1], prompt, os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "reset-password: %v\n", err)
			return 1
		}
		return 0
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n", args[0])
		return 2
	}
}

func runServer() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	time.Local = cfg.location

	appLogger := newLogger(cfg.logLevel, cfg.logFormat, os.Stdout)
	slog.SetDefault(appLogger)

	database, err := db.OpenSQLite(cfg.dbPath, appLogger)
	if err != nil {
		return fmt.Errorf("database init failed: %w", err)
	}

	i18nManager, err := i18n.NewManager(cfg.defaultLanguage, i18n.EmbeddedLocales())
	if err != nil {
		return fmt.Errorf("i18n init failed: %w", err)
	}

	handler, err := api.NewHandler(database, cfg.secretKey, cfg.location, i18nManager, cfg.cookieSecure, cfg.editPolicy, appLogger)
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "Dojo, aonde?",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)
	app.Use(csrf.New(csrfMiddlewareConfig(cfg.cookieSecure)))

	api.RegisterRoutes(app, handler)
	app.Use(handler.NotFound)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			appLogger.Error("server shutdown failed", "error", err)
		}
	}()

	appLogger.Info("dojoaonde listening",
		"addr", "0.0.0.0:"+cfg.port,
		"db", cfg.dbPath,
		"tz", cfg.location.String(),
		"dojo_edit_policy", string(cfg.editPolicy),
	)
	if err := app.Listen(":" + cfg.port); err != nil {
		return fmt.Errorf("server exited: %w", err)
	}
	return nil
}

func csrfMiddlewareConfig(cookieSecure bool) csrf.Config {
	return csrf.Config{
		KeyLookup:      "form:csrf_token",
		CookieName:     "dojoaonde_csrf",
		CookieSameSite: "Lax",
		CookieHTTPOnly: true,
		CookieSecure:   cookieSecure,
		ContextKey:     "csrf",
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return redirectWithFlashError(c, "/login", "Invalid or expired form, please try again.", cookieSecure)
		},
	}
}

// redirectWithFlashError sends form posts back to path with message in the flash
// cookie, keeping the submitted login email.
func redirectWithFlashError(c *fiber.Ctx, path string, message string, cookieSecure bool) error {
	if api.AcceptsJSON(c) {
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": message})
	}
	api.SetFlashCookie(c, api.FlashPayload{
		AuthError:  message,
		LoginEmail: c.FormValue("email"),
	}, cookieSecure)
	return c.Redirect(path, fiber.StatusSeeOther)
}
