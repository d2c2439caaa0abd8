package app

import (
	"context"

	_ "github.com/DIMO-Network/interactions-api/docs" // Import Swagger docs
	"github.com/DIMO-Network/interactions-api/internal/config"
	"github.com/DIMO-Network/interactions-api/internal/controllers/interaction"
	"github.com/DIMO-Network/interactions-api/internal/signature"
	"github.com/DIMO-Network/interactions-api/pkg/middleware"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the signature verifier from settings and returns the API app.
func CreateServers(_ context.Context, settings *config.Settings, logger zerolog.Logger) (*fiber.App, error) {
	opts := signature.Options{
		MaxTimestampSkew: settings.MaxTimestampSkew,
	}
	if settings.ReplayWindow > 0 {
		opts.Replay = signature.NewReplayGuard(settings.ReplayWindow)
	}
	verifier := signature.NewVerifier(settings.ApplicationPublicKey, opts)
	if err := verifier.KeyError(); err != nil {
		// The service still starts so the platform gets a well defined answer.
		logger.Warn().Err(err).Msg("Application public key is not usable, interactions will be rejected")
	}

	return CreateFiberApp(logger, verifier), nil
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, verifier interaction.Verifier) *fiber.App {
	logger.Info().Msg("Starting Interactions API...")

	app := fiber.New(fiber.Config{
		ErrorHandler:          middleware.ErrorHandler,
		DisableStartupMessage: true,
	})
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Interactions API!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	interactionController := interaction.NewInteractionController(verifier)
	logger.Info().Msg("Registering routes...")

	app.Post("/api/interactions", interactionController.HandleInteraction)
	// Path used by earlier deployments of the bot.
	app.Post("/api/discord", interactionController.HandleInteraction)

	return app
}
