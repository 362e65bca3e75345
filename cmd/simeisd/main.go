package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"github.com/jessevdk/go-flags"

	"simeis/internal/httpapi"
	"simeis/internal/model"
	"simeis/internal/world"
	"simeis/pkg/arguments"
	"simeis/pkg/logger"
)

type options struct {
	Config string `short:"c" long:"config" description:"Configuration file to customize app behavior (development/production)" default:""`
}

// main :
// Starts the simulation driver and the HTTP server, and blocks until
// an interrupt or termination signal asks for a graceful shutdown.
func main() {
	var opts options
	parser := flags.NewParser(&opts, flags.Default)
	parser.Name = "simeisd"

	if _, err := parser.Parse(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(1)
	}

	app := arguments.Parse(opts.Config)
	cfg := arguments.ParseSimulationConfig(opts.Config)

	log := logger.NewStdLogger(app.InstanceID, app.PublicIPv4)

	defer func() {
		if err := recover(); err != nil {
			stack := string(debug.Stack())
			log.Trace(logger.Fatal, "main", fmt.Sprintf("App crashed after error: %v (stack: %s)", err, stack))
		}
		log.Release()
	}()

	if err := model.LoadCatalogOverride(cfg.CatalogOverridePath); err != nil {
		panic(fmt.Errorf("unable to load resource catalog override (err: %v)", err))
	}

	w := world.New(cfg, log)

	driver, err := w.StartDriver()
	if err != nil {
		panic(fmt.Errorf("unable to start simulation driver (err: %v)", err))
	}

	server := httpapi.NewServer(cfg.ListenAddress, w, log)

	go func() {
		log.Trace(logger.Notice, "main", fmt.Sprintf("Listening on %s", cfg.ListenAddress))
		if serveErr := server.ListenAndServe(); serveErr != nil {
			log.Trace(logger.Critical, "main", fmt.Sprintf("HTTP server stopped (err: %v)", serveErr))
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Trace(logger.Notice, "main", "Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = server.Shutdown(ctx)

	driver.Stop()
}
