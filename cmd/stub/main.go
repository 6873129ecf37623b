package main

import (
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/kaiiquetome/GraphixWeb/internal/interfaces/stub"
	"github.com/kaiiquetome/GraphixWeb/pkg/config"
	"github.com/kaiiquetome/GraphixWeb/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("carregar configuração: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "debug",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("addr", cfg.Stub.Addr()).
		Msg("iniciando backend de desenvolvimento")

	data := stub.NewDataset()
	if err := stub.Seed(data); err != nil {
		log.Fatal().Err(err).Msg("seed do conjunto de dados")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name + "-stub",
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: stub.ErrorHandler(),
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	stub.Router(app, stub.Deps{
		Data:            data,
		JWTSecret:       cfg.Stub.JWTSecret,
		Issuer:          cfg.App.Name,
		TokenExpMinutes: cfg.Stub.TokenExpMinutes,
		Log:             log,
	})

	go func() {
		if err := app.Listen(cfg.Stub.Addr()); err != nil {
			log.Fatal().Err(err).Msg("servidor HTTP")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("encerrando")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
