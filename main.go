package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/lenilunderman/djangotodowoo/modules/auth"
	"github.com/lenilunderman/djangotodowoo/modules/todo"
	"github.com/lenilunderman/djangotodowoo/modules/web"
	gfshutdown "github.com/gelmium/graceful-shutdown"
	"github.com/go-monolith/mono"
)

const shutdownTimeout = 30 * time.Second

func main() {
	log.Println("=== Todo WOO ===")

	// Create mono application
	app, err := mono.NewMonoApplication(
		mono.WithShutdownTimeout(shutdownTimeout),
		mono.WithLogLevel(mono.LogLevelInfo),
		mono.WithLogFormat(mono.LogFormatText),
	)
	if err != nil {
		log.Fatalf("Failed to create application: %v", err)
	}

	// Register modules with the framework
	// Order: independent modules first, then dependent modules
	app.Register(auth.NewModule()) // identity services
	app.Register(todo.NewModule()) // todo persistence services
	app.Register(web.NewModule())  // depends on auth and todo

	// Start application
	if err := app.Start(context.Background()); err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}

	printStartupInfo()

	// Graceful shutdown
	wait := gfshutdown.GracefulShutdown(
		context.Background(),
		shutdownTimeout,
		map[string]gfshutdown.Operation{
			"mono-app": func(ctx context.Context) error {
				log.Println("Graceful shutdown initiated...")
				return app.Stop(ctx)
			},
		},
	)

	exitCode := <-wait
	log.Printf("Application exited with code: %d", exitCode)
	os.Exit(exitCode)
}

func printStartupInfo() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	log.Println("")
	log.Println("Application started successfully!")
	log.Println("")
	log.Printf("Pages (http://localhost:%s):", port)
	log.Println("")
	log.Println("  Public:")
	log.Println("  GET        /          - Home page")
	log.Println("  GET/POST   /signup    - Sign up")
	log.Println("  GET/POST   /login     - Log in")
	log.Println("  GET        /health    - Health check")
	log.Println("")
	log.Println("  Authenticated:")
	log.Println("  GET        /current             - Open todos")
	log.Println("  GET        /completed           - Completed todos")
	log.Println("  GET/POST   /create              - Create a todo")
	log.Println("  GET/POST   /todo/:id            - View and edit a todo")
	log.Println("  POST       /todo/:id/complete   - Mark a todo completed")
	log.Println("  POST       /todo/:id/delete     - Delete a todo")
	log.Println("  POST       /logout              - Log out")
	log.Println("")
	log.Println("Press Ctrl+C to shutdown gracefully")
}
