package httpapi

import (
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
)

// NewApp builds the Fiber app shared by the server and the tests.
func NewApp(views fiber.Views) *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "weather-compare",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		Views:                 views,
		JSONEncoder:           json.Marshal,
		JSONDecoder:           json.Unmarshal,
		ErrorHandler:          ErrorHandler,
	})
}

// Run serves app on addr until ctx is done, then shuts down within
// shutdownTimeout. A listen failure is returned immediately.
func Run(ctx context.Context, app *fiber.App, addr string, shutdownTimeout time.Duration) error {
	listenErr := make(chan error, 1)
	go func() {
		listenErr <- app.Listen(addr)
	}()

	select {
	case err := <-listenErr:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return app.ShutdownWithContext(shutdownCtx)
}
